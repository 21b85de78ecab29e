package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spikesim/event"
	"spikesim/event/events"
	"spikesim/neuron"
	"spikesim/queue"
	"spikesim/synapses"
	"spikesim/util/file"
	"spikesim/world"
)

type fixedRNG struct {
	value float64
}

func (rng fixedRNG) Rand() float64 {
	return rng.value
}

func testConfig(steps int64) *file.Config {
	return &file.Config{COutPath: "out", CSteps: steps, CDt: 0.001}
}

func TestWorldRunsAndConservesEvents(t *testing.T) {
	config := testConfig(10)
	simWorld := world.NewWorld(event.NewSchedule(), config)

	// rate*dt = 1, every neuron fires every step
	in := neuron.NewPoissonGroup("in", 2, 1000, config.Dt(), fixedRNG{0})
	out := neuron.NewLIFGroup("out", 2, 0.02, 0, 0, 1e9, 0, 0, config.Dt(), nil)
	simWorld.AddGroups(in, out)
	simWorld.AddGroupIds("in", "out")

	table := queue.NewDelayTable([][]int32{{0}, {1}}, [][]int32{{0}, {3}}, 2)
	pathway := synapses.NewPathway("in->out", in, out, table, []int32{0, 1}, []float64{1, 1})
	simWorld.AddPathways(pathway)

	simWorld.StartSim()

	assert.Equal(t, int64(10), simWorld.Step())
	assert.Equal(t, uint64(20), in.SpikeCount(), "2 neurons, 10 steps")
	assert.Equal(t, uint64(20), pathway.PushedCount())
	// the last three delay-3 events are still in flight
	assert.Equal(t, uint64(17), pathway.DeliveredCount())
	assert.Equal(t, 3, pathway.Queue().PendingCount())
	assert.Equal(t, pathway.PushedCount(), pathway.DeliveredCount()+uint64(pathway.Queue().PendingCount()))

	assert.Greater(t, out.Potential(0), 0.0, "delivered weights accumulated")
	assert.Zero(t, out.SpikeCount(), "threshold was out of reach")
}

func TestWorldExecutesScheduledStimuli(t *testing.T) {
	config := testConfig(10)
	schedule := event.NewSchedule()
	simWorld := world.NewWorld(schedule, config)

	in := neuron.NewPoissonGroup("in", 1, 1000, config.Dt(), fixedRNG{0})
	simWorld.AddGroups(in)
	simWorld.AddGroupIds("in")

	// silence the group from step 5 on
	schedule.Add(events.NewRateChangeEvent(5, "in", 0))
	simWorld.StartSim()

	assert.Equal(t, uint64(5), in.SpikeCount(), "fired during steps 0..4 only")
	assert.Zero(t, simWorld.Schedule().Length())
}

func TestWorldStopSim(t *testing.T) {
	config := testConfig(1000000)
	simWorld := world.NewWorld(event.NewSchedule(), config)
	in := neuron.NewPoissonGroup("in", 1, 0, config.Dt(), fixedRNG{0.5})
	simWorld.AddGroups(in)
	simWorld.AddGroupIds("in")

	simWorld.StopSim()
	simWorld.StartSim()
	require.Zero(t, simWorld.Step(), "a stopped world does not step")
}
