package neuron

import (
	"log"
	"spikesim/interfaces"
)

// PoissonGroup is a rate-driven source group: every neuron fires each step
// with probability rate*dt, independent of synaptic input.
type PoissonGroup struct {
	id         string
	size       int
	prob       float64
	dt         float64
	firing     []int32
	rng        interfaces.IRNG
	FiredTotal uint64 `json:"firedTotal"`
}

func NewPoissonGroup(id string, size int, rateHz float64, dt float64, rng interfaces.IRNG) *PoissonGroup {
	if size <= 0 {
		log.Panicf("group %v: size %v must be positive", id, size)
	}
	if rng == nil {
		log.Panicf("group %v: poisson group needs a random number generator", id)
	}
	group := &PoissonGroup{id: id, size: size, dt: dt, firing: make([]int32, 0, size), rng: rng}
	group.SetRate(rateHz)
	return group
}

func (group *PoissonGroup) Id() string {
	return group.id
}

func (group *PoissonGroup) Model() interfaces.IGroupModel {
	return interfaces.POISSON_GROUP
}

func (group *PoissonGroup) Size() int {
	return group.size
}

func (group *PoissonGroup) Update(step int64) {
	group.firing = group.firing[:0]
	for i := 0; i < group.size; i++ {
		if group.rng.Rand() < group.prob {
			group.firing = append(group.firing, int32(i))
		}
	}
	group.FiredTotal += uint64(len(group.firing))
}

func (group *PoissonGroup) Firing() []int32 {
	return group.firing
}

// AddInput is a no-op, the group's firing is purely rate-driven.
func (group *PoissonGroup) AddInput(neuron int32, current float64) {
}

func (group *PoissonGroup) SpikeCount() uint64 {
	return group.FiredTotal
}

func (group *PoissonGroup) SetRate(hz float64) {
	if hz < 0 {
		log.Panicf("group %v: rate %v must not be negative", group.id, hz)
	}
	group.prob = hz * group.dt
	if group.prob > 1 {
		group.prob = 1
	}
}
