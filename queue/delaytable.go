package queue

import (
	"log"
)

// DelayTable maps every source neuron to its outgoing synapses and their
// delivery delays in whole steps. It is built once before the simulation
// starts and read-only afterwards. The per-source lists are concatenated
// into flat backing arrays with start offsets, so Lookup is O(1) and the
// per-step hot path never allocates.
type DelayTable struct {
	offsets  []int32
	targets  []int32
	delays   []int32
	maxDelay int32
}

// NewDelayTable concatenates the per-source target/delay lists. numSynapses
// bounds the valid synapse target range. Malformed input is a configuration
// error and panics; failing here is what keeps a bad delay from silently
// landing in the wrong future bin.
func NewDelayTable(targetsPerSource [][]int32, delaysPerSource [][]int32, numSynapses int) *DelayTable {
	if len(targetsPerSource) != len(delaysPerSource) {
		log.Panicf("delay table: %v target lists but %v delay lists", len(targetsPerSource), len(delaysPerSource))
	}
	table := &DelayTable{offsets: make([]int32, 1, len(targetsPerSource)+1)}
	for source, targets := range targetsPerSource {
		delays := delaysPerSource[source]
		if len(targets) != len(delays) {
			log.Panicf("delay table: source %v has %v targets but %v delays", source, len(targets), len(delays))
		}
		for i, target := range targets {
			if target < 0 || int(target) >= numSynapses {
				log.Panicf("delay table: source %v target %v out of range [0, %v)", source, target, numSynapses)
			}
			if delays[i] < 0 {
				log.Panicf("delay table: source %v synapse %v has negative delay %v", source, target, delays[i])
			}
			if delays[i] > table.maxDelay {
				table.maxDelay = delays[i]
			}
		}
		table.targets = append(table.targets, targets...)
		table.delays = append(table.delays, delays...)
		table.offsets = append(table.offsets, int32(len(table.targets)))
	}
	return table
}

// Lookup returns the synapse targets and step delays of one source. Both
// slices alias the table's backing store and must not be modified. A source
// without outgoing synapses yields empty slices.
func (table *DelayTable) Lookup(source int32) (targets []int32, delays []int32) {
	start, end := table.offsets[source], table.offsets[source+1]
	return table.targets[start:end], table.delays[start:end]
}

func (table *DelayTable) NumSources() int {
	return len(table.offsets) - 1
}

func (table *DelayTable) NumSynapses() int {
	return len(table.targets)
}

func (table *DelayTable) MaxDelay() int32 {
	return table.maxDelay
}
