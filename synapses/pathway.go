package synapses

import (
	"log"
	"spikesim/interfaces"
	"spikesim/queue"
	"spikesim/util/metrics"
)

// Pathway connects a source group to a target group. It owns its spike queue
// and the flat per-synapse postsynaptic-neuron and weight arrays; the synapse
// indices stored in the queue's delay table index into those arrays.
type Pathway struct {
	id          string
	source      interfaces.INeuronGroup
	target      interfaces.INeuronGroup
	spikeQueue  *queue.SpikeQueue
	postNeurons []int32
	weights     []float64
	delivered   uint64
}

func NewPathway(id string, source interfaces.INeuronGroup, target interfaces.INeuronGroup, table *queue.DelayTable, postNeurons []int32, weights []float64) *Pathway {
	if table.NumSources() != source.Size() {
		log.Panicf("pathway %v: delay table covers %v sources but group %v has %v neurons", id, table.NumSources(), source.Id(), source.Size())
	}
	if len(postNeurons) != table.NumSynapses() || len(weights) != table.NumSynapses() {
		log.Panicf("pathway %v: %v synapses but %v post neurons and %v weights", id, table.NumSynapses(), len(postNeurons), len(weights))
	}
	for syn, post := range postNeurons {
		if post < 0 || int(post) >= target.Size() {
			log.Panicf("pathway %v: synapse %v post neuron %v out of range [0, %v)", id, syn, post, target.Size())
		}
	}
	return &Pathway{
		id:          id,
		source:      source,
		target:      target,
		spikeQueue:  queue.NewSpikeQueue(table),
		postNeurons: postNeurons,
		weights:     weights,
	}
}

func (pathway *Pathway) Id() string {
	return pathway.id
}

func (pathway *Pathway) Source() interfaces.INeuronGroup {
	return pathway.source
}

func (pathway *Pathway) Target() interfaces.INeuronGroup {
	return pathway.target
}

// Deliver runs one step: advance the queue, push the source group's firing
// set, then apply every due synapse's weight to its postsynaptic neuron. The
// peeked bin is fully drained here, before any future advance can reuse it.
func (pathway *Pathway) Deliver(step int64) {
	pathway.spikeQueue.Advance()
	pushedBefore := pathway.spikeQueue.PushedTotal()
	pathway.spikeQueue.Push(pathway.source.Firing())
	due := pathway.spikeQueue.Peek()
	for _, syn := range due {
		pathway.target.AddInput(pathway.postNeurons[syn], pathway.weights[syn])
	}
	pathway.delivered += uint64(len(due))
	metrics.Counter(metrics.NameFormat(interfaces.METRIC_EVENTS_PUSHED, pathway.id), int64(pathway.spikeQueue.PushedTotal()-pushedBefore))
	metrics.Counter(metrics.NameFormat(interfaces.METRIC_EVENTS_DELIVERED, pathway.id), int64(len(due)))
}

func (pathway *Pathway) Queue() interfaces.ISpikeQueue {
	return pathway.spikeQueue
}

func (pathway *Pathway) SynapseCount() int {
	return len(pathway.postNeurons)
}

func (pathway *Pathway) PushedCount() uint64 {
	return pathway.spikeQueue.PushedTotal()
}

func (pathway *Pathway) DeliveredCount() uint64 {
	return pathway.delivered
}
