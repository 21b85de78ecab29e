package network

import (
	"spikesim/util/random"
)

// Connectivity is the static wiring of one pathway: per-source synapse lists
// feeding the delay table plus the flat post-neuron and weight arrays the
// pathway applies on delivery.
type Connectivity struct {
	TargetsPerSource [][]int32
	DelaysPerSource  [][]int32
	PostNeurons      []int32
	Weights          []float64
}

// BuildRandom wires every (source, target) pair with independent probability
// p. Delays and weights are sampled from the pathway's configured
// distributions (util/random must be initialized first); delays above
// maxDelaySteps clamp to it, so maxDelaySteps bounds the queue's ring length.
// Deterministic for a fixed seed: pairs are visited in index order.
func BuildRandom(pathwayId string, numSources int, numTargets int, p float64, maxDelaySteps int32) *Connectivity {
	connectivity := &Connectivity{
		TargetsPerSource: make([][]int32, numSources),
		DelaysPerSource:  make([][]int32, numSources),
		PostNeurons:      make([]int32, 0, int(float64(numSources*numTargets)*p)),
		Weights:          make([]float64, 0, int(float64(numSources*numTargets)*p)),
	}
	for source := 0; source < numSources; source++ {
		for target := 0; target < numTargets; target++ {
			if !random.Connected(p) {
				continue
			}
			delay := random.DelaySteps(pathwayId)
			if delay > maxDelaySteps {
				delay = maxDelaySteps
			}
			synapse := int32(len(connectivity.PostNeurons))
			connectivity.TargetsPerSource[source] = append(connectivity.TargetsPerSource[source], synapse)
			connectivity.DelaysPerSource[source] = append(connectivity.DelaysPerSource[source], delay)
			connectivity.PostNeurons = append(connectivity.PostNeurons, int32(target))
			connectivity.Weights = append(connectivity.Weights, random.Weight(pathwayId))
		}
	}
	return connectivity
}

func (connectivity *Connectivity) SynapseCount() int {
	return len(connectivity.PostNeurons)
}
