package stats

import (
	"encoding/json"
	"os"
	"sort"
	"spikesim/interfaces"
	"spikesim/util/file"
)

func PrintWorld(world interfaces.IWorld, file *os.File) {
	stats, _ := json.Marshal(world)
	file.Write(stats)
}

func PrintStatsOverview(world interfaces.IWorld, file *os.File, config *file.Config) {
	statsOverview, _ := json.Marshal(NewStatsOverview(world, config))
	file.Write(statsOverview)
}

type StatsOverview struct {
	SimulatedSteps        int64
	SimulatedSeconds      float64
	SpikeCountPerGroup    map[string]uint64
	MeanRateHzPerGroup    map[string]float64
	SynapsesPerPathway    map[string]int
	RingLengthPerPathway  map[string]int
	PushedPerPathway      map[string]uint64
	DeliveredPerPathway   map[string]uint64
	PendingPerPathway     map[string]int
	TotalSpikes           uint64
	TotalDeliveredEvents  uint64
	StimuliLeftInSchedule int
}

func NewStatsOverview(world interfaces.IWorld, config *file.Config) *StatsOverview {
	var spikeCount map[string]uint64 = make(map[string]uint64)
	var meanRate map[string]float64 = make(map[string]float64)
	var synapses map[string]int = make(map[string]int)
	var ringLength map[string]int = make(map[string]int)
	var pushed map[string]uint64 = make(map[string]uint64)
	var delivered map[string]uint64 = make(map[string]uint64)
	var pending map[string]int = make(map[string]int)

	// use sorted group key array because of determinism
	var groupIds []string = make([]string, 0, len(world.Groups()))
	for gId := range world.Groups() {
		groupIds = append(groupIds, gId)
	}
	sort.Strings(groupIds)

	simulatedSeconds := float64(world.Step()) * world.Dt()
	var totalSpikes uint64
	for _, gId := range groupIds {
		group := world.Groups()[gId]
		spikeCount[gId] = group.SpikeCount()
		totalSpikes += group.SpikeCount()
		if simulatedSeconds > 0 {
			meanRate[gId] = float64(group.SpikeCount()) / (float64(group.Size()) * simulatedSeconds)
		}
	}

	var totalDelivered uint64
	for _, pathway := range world.Pathways() {
		synapses[pathway.Id()] = pathway.SynapseCount()
		ringLength[pathway.Id()] = pathway.Queue().RingLength()
		pushed[pathway.Id()] = pathway.PushedCount()
		delivered[pathway.Id()] = pathway.DeliveredCount()
		pending[pathway.Id()] = pathway.Queue().PendingCount()
		totalDelivered += pathway.DeliveredCount()
	}

	return &StatsOverview{
		SimulatedSteps:        world.Step(),
		SimulatedSeconds:      simulatedSeconds,
		SpikeCountPerGroup:    spikeCount,
		MeanRateHzPerGroup:    meanRate,
		SynapsesPerPathway:    synapses,
		RingLengthPerPathway:  ringLength,
		PushedPerPathway:      pushed,
		DeliveredPerPathway:   delivered,
		PendingPerPathway:     pending,
		TotalSpikes:           totalSpikes,
		TotalDeliveredEvents:  totalDelivered,
		StimuliLeftInSchedule: world.Schedule().Length(),
	}
}
