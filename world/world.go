package world

import (
	"fmt"
	"log"
	"runtime"
	"runtime/pprof"
	"spikesim/interfaces"
	"spikesim/util/file"
	"spikesim/util/logger"
	"spikesim/util/metrics"
	"time"
)

type World struct {
	schedule             interfaces.ISchedule
	WStep                int64 `json:"worldStep"` // steps since sim start
	WStartTime           int64 `json:"startTime"` // unix nanos
	endStep              int64
	dt                   float64
	WGroups              map[string]interfaces.INeuronGroup `json:"g"`
	groupIds             []string
	pathways             []interfaces.IPathway
	stimuliExecutedCount uint64
	simConfig            interfaces.IConfig
	printMemStats        bool
	simStopped           bool
}

func NewWorld(schedule interfaces.ISchedule, simConfig interfaces.IConfig) interfaces.IWorld {
	return &World{schedule: schedule, WStep: 0, endStep: simConfig.Steps(), dt: simConfig.Dt(), WGroups: make(map[string]interfaces.INeuronGroup), groupIds: make([]string, 0), pathways: make([]interfaces.IPathway, 0), stimuliExecutedCount: 0, simConfig: simConfig, printMemStats: simConfig.PrintMemStats(), simStopped: false}
}

func (world *World) Schedule() interfaces.ISchedule {
	return world.schedule
}

func (world *World) Step() int64 {
	return world.WStep
}

func (world *World) StartTime() int64 {
	return world.WStartTime
}

func (world *World) EndStep() int64 {
	return world.endStep
}

func (world *World) Dt() float64 {
	return world.dt
}

func (world *World) Groups() map[string]interfaces.INeuronGroup {
	return world.WGroups
}

func (world *World) AddGroups(groups ...interfaces.INeuronGroup) {
	for _, group := range groups {
		world.WGroups[group.Id()] = group
	}
}

func (world *World) GroupIds() []string {
	return world.groupIds
}

func (world *World) AddGroupIds(ids ...string) {
	world.groupIds = append(world.groupIds, ids...)
}

func (world *World) Pathways() []interfaces.IPathway {
	return world.pathways
}

func (world *World) AddPathways(pathways ...interfaces.IPathway) {
	world.pathways = append(world.pathways, pathways...)
}

func (world *World) SimConfig() interfaces.IConfig {
	return world.simConfig
}

func (world *World) StopSim() {
	world.simStopped = true
}

func (world *World) StartSim() {
	world.WStartTime = time.Now().UnixNano()
	log.Printf("Sim started at real time %v\n", time.Unix(0, world.StartTime()))
	if world.printMemStats {
		fmt.Printf("\tStep \t\t\t Spikes(Pending) \t\t\t Heap Alloc GiB \t\t Sys Memory GiB \t NumGarbageCollectionCycles\n")
	}
	auditSpikes := world.simConfig.AuditLogSpikes()
	// fixed per-step order: stimuli, group updates, pathway deliveries
	for world.WStep = 0; world.WStep < world.endStep && !world.simStopped; world.WStep++ {
		startTime := time.Now().UnixNano()

		for _, ev := range world.schedule.DueEvents(world.WStep) {
			ev.Execute(world)
			world.stimuliExecutedCount++
			metrics.Counter(metrics.NameFormat(interfaces.METRIC_STIMULI_EXECUTED, ev.TargetId()), 1)
		}

		// use the insertion-ordered group id array because of determinism
		for _, gId := range world.groupIds {
			group := world.WGroups[gId]
			group.Update(world.WStep)
			fired := group.Firing()
			metrics.Counter(metrics.NameFormat(interfaces.METRIC_SPIKES_FIRED, gId), int64(len(fired)))
			if auditSpikes {
				for _, neuron := range fired {
					logger.AuditSpike(gId, neuron, world.WStep)
				}
			}
		}

		for _, pathway := range world.pathways {
			pathway.Deliver(world.WStep)
			metrics.Gauge(metrics.NameFormat(interfaces.METRIC_QUEUE_PENDING, pathway.Id()), int64(pathway.Queue().PendingCount()))
		}

		metrics.Timer(metrics.NameFormat(interfaces.METRIC_STEP_REAL_TIME, "Mus"), time.Duration((time.Now().UnixNano()-startTime)/1000))
		if world.printMemStats && world.WStep%1000 == 0 {
			printMemUsage(false, world)
		}
		if world.simConfig.UsePprof() && world.WStep > 0 && world.WStep%1000000 == 0 {
			printPprof(world.WStep, world.simConfig)
		}
	}
	if world.printMemStats {
		fmt.Printf("\n")
		printMemUsage(true, world)
	}
	simulatedSeconds := float64(world.WStep) * world.dt
	if simulatedSeconds > 0 {
		for _, gId := range world.groupIds {
			group := world.WGroups[gId]
			metrics.FloatGauge(metrics.NameFormat(interfaces.METRIC_FIRING_RATE, gId), float64(group.SpikeCount())/(float64(group.Size())*simulatedSeconds))
		}
	}
	log.Printf("Sim ended at step %v (%v simulated seconds) after real time %v, %v spikes were fired, %v stimuli were executed\n", world.WStep, float64(world.WStep)*world.dt, time.Since(time.Unix(0, world.StartTime())), world.totalSpikes(), world.stimuliExecutedCount)
}

func (world *World) totalSpikes() uint64 {
	var total uint64
	for _, group := range world.WGroups {
		total += group.SpikeCount()
	}
	return total
}

func (world *World) totalPending() int {
	total := 0
	for _, pathway := range world.pathways {
		total += pathway.Queue().PendingCount()
	}
	return total
}

func printMemUsage(toLogger bool, world *World) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if toLogger {
		log.Printf("\n\tHeap Alloc %.3f GiB\n\tTotal (Acc) Heap Alloc %.3f GiB\n\tSys Memory %.3f GiB\n\tNumGarbageCollectionCycles %v\n", bToGb(&m.Alloc), bToGb(&m.TotalAlloc), bToGb(&m.Sys), m.NumGC)
	} else {
		fmt.Printf("\r%20v \t\t %25s \t\t\t %10.3f \t\t\t %10.3f \t\t %10d", world.WStep, fmt.Sprintf("%v(%v)", world.totalSpikes(), world.totalPending()), bToGb(&m.Alloc), bToGb(&m.Sys), m.NumGC)
	}
}

// for debugging memory leaks
func printPprof(step int64, config interfaces.IConfig) {
	f := file.PprofFile(config, int(step))
	defer f.Close()
	pprof.WriteHeapProfile(f)
}

func bToGb(b *uint64) float64 {
	return float64(*b) / 1024 / 1024 / 1024
}
