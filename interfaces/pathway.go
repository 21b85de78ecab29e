package interfaces

type IPathway interface {
	Id() string
	Source() INeuronGroup
	Target() INeuronGroup
	// Deliver runs one step of the pathway: advance the queue, push the
	// source group's firing set and apply every synapse due this step to
	// its postsynaptic neuron.
	Deliver(step int64)
	Queue() ISpikeQueue
	SynapseCount() int
	PushedCount() uint64
	DeliveredCount() uint64
}
