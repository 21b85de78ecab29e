package interfaces

// ISpikeQueue is the per-pathway delivery queue for spikes in flight.
// The driving loop calls Advance, Push and Peek in that order exactly once
// per simulation step; the queue is never shared between threads.
type ISpikeQueue interface {
	// Advance moves the queue forward by one step. The bin it vacates is
	// cleared and becomes the new maximum-delay horizon.
	Advance()
	// Push schedules all outgoing synapses of the firing sources.
	Push(firing []int32)
	// Peek returns the synapse targets due at the current step without
	// consuming them. The returned slice is only valid until the advance
	// that cycles back to its bin.
	Peek() []int32
	Step() int64
	RingLength() int
	// PushedTotal returns the number of events ever pushed.
	PushedTotal() uint64
	// PendingCount returns the number of events currently scheduled across
	// all bins (for stats/debugging, not for the hot path).
	PendingCount() int
}
