package neuron

import (
	"log"
	"spikesim/interfaces"
)

// LIFGroup is a group of leaky integrate-and-fire neurons. Synaptic input is
// accumulated between updates and consumed by the next Update.
type LIFGroup struct {
	id              string
	v               []float64
	input           []float64
	refractory      []int32
	firing          []int32
	tauM            float64
	vRest           float64
	vReset          float64
	vThreshold      float64
	bias            float64
	dt              float64
	refractorySteps int32
	FiredTotal      uint64 `json:"firedTotal"`
}

// NewLIFGroup creates the group with all neurons at rest; initPotential, if
// not nil, jitters the starting potentials (fraction in [0,1) of the
// rest-to-threshold distance) so the group does not fire in lockstep.
func NewLIFGroup(id string, size int, tauM float64, vRest float64, vReset float64, vThreshold float64, refractorySteps int32, bias float64, dt float64, initPotential interfaces.IRNG) *LIFGroup {
	if size <= 0 {
		log.Panicf("group %v: size %v must be positive", id, size)
	}
	if tauM <= 0 {
		log.Panicf("group %v: membrane time constant %v must be positive", id, tauM)
	}
	group := &LIFGroup{
		id:              id,
		v:               make([]float64, size),
		input:           make([]float64, size),
		refractory:      make([]int32, size),
		firing:          make([]int32, 0, size),
		tauM:            tauM,
		vRest:           vRest,
		vReset:          vReset,
		vThreshold:      vThreshold,
		bias:            bias,
		dt:              dt,
		refractorySteps: refractorySteps,
	}
	for i := range group.v {
		group.v[i] = vRest
		if initPotential != nil {
			group.v[i] += initPotential.Rand() * (vThreshold - vRest)
		}
	}
	return group
}

func (group *LIFGroup) Id() string {
	return group.id
}

func (group *LIFGroup) Model() interfaces.IGroupModel {
	return interfaces.LIF_GROUP
}

func (group *LIFGroup) Size() int {
	return len(group.v)
}

func (group *LIFGroup) Update(step int64) {
	group.firing = group.firing[:0]
	leak := group.dt / group.tauM
	for i := range group.v {
		if group.refractory[i] > 0 {
			group.refractory[i]--
			group.input[i] = 0
			continue
		}
		group.v[i] += leak*(group.vRest-group.v[i]) + group.input[i] + group.bias
		group.input[i] = 0
		if group.v[i] >= group.vThreshold {
			group.v[i] = group.vReset
			group.refractory[i] = group.refractorySteps
			group.firing = append(group.firing, int32(i))
		}
	}
	group.FiredTotal += uint64(len(group.firing))
}

func (group *LIFGroup) Firing() []int32 {
	return group.firing
}

func (group *LIFGroup) AddInput(neuron int32, current float64) {
	group.input[neuron] += current
}

func (group *LIFGroup) SpikeCount() uint64 {
	return group.FiredTotal
}

func (group *LIFGroup) SetBias(current float64) {
	group.bias = current
}

// Potential is a test/stats accessor for one neuron's membrane potential.
func (group *LIFGroup) Potential(neuron int32) float64 {
	return group.v[neuron]
}
