package synapses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spikesim/interfaces"
	"spikesim/queue"
	"spikesim/synapses"
)

// stubGroup lets the tests drive the firing set and record applied inputs.
type stubGroup struct {
	id     string
	size   int
	firing []int32
	inputs []appliedInput
}

type appliedInput struct {
	neuron  int32
	current float64
}

func (group *stubGroup) Id() string { return group.id }

func (group *stubGroup) Model() interfaces.IGroupModel { return interfaces.LIF_GROUP }

func (group *stubGroup) Size() int { return group.size }

func (group *stubGroup) Update(step int64) {}

func (group *stubGroup) Firing() []int32 { return group.firing }

func (group *stubGroup) SpikeCount() uint64 { return 0 }

func (group *stubGroup) AddInput(neuron int32, current float64) {
	group.inputs = append(group.inputs, appliedInput{neuron, current})
}

func TestPathwayDeliversAtDelayedStep(t *testing.T) {
	source := &stubGroup{id: "src", size: 2}
	target := &stubGroup{id: "tgt", size: 3}
	// source 0 -> synapse 0 (delay 2, post neuron 2, weight 1.5)
	// source 1 -> synapse 1 (delay 0, post neuron 0, weight -0.5)
	table := queue.NewDelayTable([][]int32{{0}, {1}}, [][]int32{{2}, {0}}, 2)
	pathway := synapses.NewPathway("src->tgt", source, target, table, []int32{2, 0}, []float64{1.5, -0.5})

	source.firing = []int32{0}
	pathway.Deliver(0)
	assert.Empty(t, target.inputs, "delay 2 must not arrive at its push step")

	source.firing = []int32{1}
	pathway.Deliver(1)
	require.Equal(t, []appliedInput{{0, -0.5}}, target.inputs, "delay 0 arrives the same step")

	source.firing = nil
	pathway.Deliver(2)
	assert.Equal(t, []appliedInput{{0, -0.5}, {2, 1.5}}, target.inputs)

	assert.Equal(t, uint64(2), pathway.PushedCount())
	assert.Equal(t, uint64(2), pathway.DeliveredCount())
	assert.Zero(t, pathway.Queue().PendingCount())
}

func TestPathwayCounts(t *testing.T) {
	source := &stubGroup{id: "src", size: 1}
	target := &stubGroup{id: "tgt", size: 1}
	table := queue.NewDelayTable([][]int32{{0, 1}}, [][]int32{{0, 1}}, 2)
	pathway := synapses.NewPathway("src->tgt", source, target, table, []int32{0, 0}, []float64{1, 1})

	source.firing = []int32{0}
	for step := int64(0); step < 10; step++ {
		pathway.Deliver(step)
	}
	assert.Equal(t, uint64(20), pathway.PushedCount())
	// the delay-1 synapse of the last push is still in flight
	assert.Equal(t, uint64(19), pathway.DeliveredCount())
	assert.Equal(t, 1, pathway.Queue().PendingCount())
	assert.Equal(t, 2, pathway.SynapseCount())
}

func TestPathwayRejectsInconsistentWiring(t *testing.T) {
	source := &stubGroup{id: "src", size: 1}
	target := &stubGroup{id: "tgt", size: 1}
	table := queue.NewDelayTable([][]int32{{0}}, [][]int32{{0}}, 1)

	assert.Panics(t, func() {
		// delay table covers one source, group pretends to have two
		big := &stubGroup{id: "src", size: 2}
		synapses.NewPathway("p", big, target, table, []int32{0}, []float64{1})
	})
	assert.Panics(t, func() {
		// post neuron array shorter than the synapse count
		synapses.NewPathway("p", source, target, table, []int32{}, []float64{1})
	})
	assert.Panics(t, func() {
		// post neuron out of the target group's range
		synapses.NewPathway("p", source, target, table, []int32{1}, []float64{1})
	})
}
