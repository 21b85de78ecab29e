package queue

import (
	"log"
)

// SpikeQueue holds spikes in flight between firing and delivery. It keeps a
// ring of bins, one per representable delay, with a cursor at the bin of the
// current step; bin (cursor+d) mod ringLen holds every synapse target with
// remaining delay d. The driving loop calls Advance, Push and Peek in that
// order exactly once per step, so a delay-0 synapse pushed at step t is
// already part of the Peek result of step t.
type SpikeQueue struct {
	table       *DelayTable
	bins        [][]int32
	cursor      int32
	step        int64
	pushedTotal uint64
}

// NewSpikeQueue sizes the ring to maxDelay+1 bins, so no delay in the table
// can alias to a wrong future step.
func NewSpikeQueue(table *DelayTable) *SpikeQueue {
	bins := make([][]int32, table.MaxDelay()+1)
	for i := range bins {
		bins[i] = make([]int32, 0, 4)
	}
	return &SpikeQueue{table: table, bins: bins, step: -1}
}

// Advance moves time forward by one step. The bin at the cursor has been
// consumed last step; it is cleared (capacity kept, the steady-state spike
// count barely varies) and becomes the new maximum-delay horizon once the
// cursor moves past it.
func (q *SpikeQueue) Advance() {
	q.bins[q.cursor] = q.bins[q.cursor][:0]
	q.cursor = (q.cursor + 1) % int32(len(q.bins))
	q.step++
}

// Push schedules every outgoing synapse of the firing sources into the bin
// of its delivery step. Duplicate targets are kept, delivery is per event.
func (q *SpikeQueue) Push(firing []int32) {
	ringLen := int32(len(q.bins))
	for _, source := range firing {
		if source < 0 || int(source) >= q.table.NumSources() {
			log.Panicf("spike queue: source %v out of range [0, %v)", source, q.table.NumSources())
		}
		targets, delays := q.table.Lookup(source)
		for i, target := range targets {
			slot := (q.cursor + delays[i]) % ringLen
			q.bins[slot] = append(q.bins[slot], target)
		}
		q.pushedTotal += uint64(len(targets))
	}
}

// Peek returns the synapse targets due at the current step without consuming
// them. The slice aliases the cursor bin and is only valid until the advance
// that cycles back to it, ringLen steps from now.
func (q *SpikeQueue) Peek() []int32 {
	return q.bins[q.cursor]
}

func (q *SpikeQueue) Step() int64 {
	return q.step
}

func (q *SpikeQueue) RingLength() int {
	return len(q.bins)
}

func (q *SpikeQueue) PushedTotal() uint64 {
	return q.pushedTotal
}

func (q *SpikeQueue) PendingCount() int {
	count := 0
	for _, bin := range q.bins {
		count += len(bin)
	}
	return count
}
