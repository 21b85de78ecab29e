package main

import (
	"log"
	"spikesim/event"
	"spikesim/event/events"
	"spikesim/interfaces"
	"spikesim/network"
	"spikesim/neuron"
	"spikesim/queue"
	"spikesim/synapses"
	"spikesim/util/file"
	"spikesim/util/random"
	"spikesim/util/validation"
	"spikesim/world"
)

func createWorldAndState(config *file.Config) interfaces.IWorld {

	// create new stimulus schedule
	schedule := event.NewSchedule()
	var simWorld interfaces.IWorld = world.NewWorld(schedule, config)

	synapticConfig := file.LoadSynapticConfig()
	validation.ValidateSynapticConfig(synapticConfig, config)

	var pathwayIds []string = make([]string, 0, len(config.Pathways()))
	for _, pathwayConfig := range config.Pathways() {
		pathwayIds = append(pathwayIds, pathwayId(pathwayConfig))
	}
	var poissonGroupIds []string = make([]string, 0, len(config.Groups()))
	for _, groupConfig := range config.Groups() {
		if interfaces.GROUP_MODEL_MAP[groupConfig.Model()] == interfaces.POISSON_GROUP {
			poissonGroupIds = append(poissonGroupIds, groupConfig.Name())
		}
	}
	random.InitializeSynaptic(config.Seed(), synapticConfig, pathwayIds, poissonGroupIds)

	// init groups in config order
	for _, groupConfig := range config.Groups() {
		var group interfaces.INeuronGroup
		switch interfaces.GROUP_MODEL_MAP[groupConfig.Model()] {
		case interfaces.LIF_GROUP:
			group = neuron.NewLIFGroup(groupConfig.Name(), groupConfig.Count(), groupConfig.TauM(), groupConfig.VRest(), groupConfig.VReset(), groupConfig.VThreshold(), groupConfig.RefractorySteps(), groupConfig.Bias(), config.Dt(), random.InitPotentialRNG())
		case interfaces.POISSON_GROUP:
			group = neuron.NewPoissonGroup(groupConfig.Name(), groupConfig.Count(), groupConfig.Rate(), config.Dt(), random.PoissonRNG(groupConfig.Name()))
		default:
			log.Panicf("group %v has unknown model %v", groupConfig.Name(), groupConfig.Model())
		}
		simWorld.AddGroups(group)
		simWorld.AddGroupIds(group.Id())
	}

	// build pathways, one spike queue per pathway
	totalSynapses := 0
	for _, pathwayConfig := range config.Pathways() {
		id := pathwayId(pathwayConfig)
		source := simWorld.Groups()[pathwayConfig.From()]
		target := simWorld.Groups()[pathwayConfig.To()]
		connectivity := network.BuildRandom(id, source.Size(), target.Size(), pathwayConfig.Probability(), pathwayConfig.MaxDelaySteps())
		table := queue.NewDelayTable(connectivity.TargetsPerSource, connectivity.DelaysPerSource, connectivity.SynapseCount())
		simWorld.AddPathways(synapses.NewPathway(id, source, target, table, connectivity.PostNeurons, connectivity.Weights))
		totalSynapses += connectivity.SynapseCount()
	}

	// schedule stimuli
	for _, stimulusConfig := range config.Stimuli() {
		switch stimulusConfig.Type() {
		case "rateChange":
			schedule.Add(events.NewRateChangeEvent(stimulusConfig.Step(), stimulusConfig.Group(), stimulusConfig.Value()))
		case "stepCurrent":
			schedule.Add(events.NewStepCurrentEvent(stimulusConfig.Step(), stimulusConfig.Group(), stimulusConfig.Value()))
		default:
			log.Panicf("stimulus has unknown type %v", stimulusConfig.Type())
		}
	}

	log.Printf("created %v groups, %v pathways with %v synapses in total, %v scheduled stimuli\n", len(config.Groups()), len(config.Pathways()), totalSynapses, schedule.Length())

	return simWorld
}

func pathwayId(pathwayConfig interfaces.IPathwayConfig) string {
	return pathwayConfig.From() + "->" + pathwayConfig.To()
}
