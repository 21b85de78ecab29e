package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spikesim/queue"
)

func TestDelayTableLookup(t *testing.T) {
	targets := [][]int32{{0, 1}, {}, {2, 3, 4}}
	delays := [][]int32{{5, 0}, {}, {1, 1, 2}}
	table := queue.NewDelayTable(targets, delays, 5)

	require.Equal(t, 3, table.NumSources())
	require.Equal(t, 5, table.NumSynapses())
	assert.Equal(t, int32(5), table.MaxDelay())

	gotTargets, gotDelays := table.Lookup(0)
	assert.Equal(t, []int32{0, 1}, gotTargets)
	assert.Equal(t, []int32{5, 0}, gotDelays)

	gotTargets, gotDelays = table.Lookup(1)
	assert.Empty(t, gotTargets)
	assert.Empty(t, gotDelays)

	gotTargets, gotDelays = table.Lookup(2)
	assert.Equal(t, []int32{2, 3, 4}, gotTargets)
	assert.Equal(t, []int32{1, 1, 2}, gotDelays)
}

func TestDelayTableNoSynapses(t *testing.T) {
	table := queue.NewDelayTable([][]int32{{}, {}}, [][]int32{{}, {}}, 0)
	assert.Equal(t, 2, table.NumSources())
	assert.Equal(t, 0, table.NumSynapses())
	assert.Equal(t, int32(0), table.MaxDelay())

	// a queue over an empty table still advances cleanly
	q := queue.NewSpikeQueue(table)
	assert.Equal(t, 1, q.RingLength())
	q.Advance()
	q.Push([]int32{0, 1})
	assert.Empty(t, q.Peek())
}

func TestDelayTableRejectsMalformedInput(t *testing.T) {
	assert.Panics(t, func() {
		// more target lists than delay lists
		queue.NewDelayTable([][]int32{{0}, {1}}, [][]int32{{0}}, 2)
	})
	assert.Panics(t, func() {
		// per-source length mismatch
		queue.NewDelayTable([][]int32{{0, 1}}, [][]int32{{0}}, 2)
	})
	assert.Panics(t, func() {
		// negative delay
		queue.NewDelayTable([][]int32{{0}}, [][]int32{{-1}}, 1)
	})
	assert.Panics(t, func() {
		// synapse target out of range
		queue.NewDelayTable([][]int32{{3}}, [][]int32{{0}}, 3)
	})
}
