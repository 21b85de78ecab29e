package interfaces

type INeuronGroup interface {
	Id() string
	Model() IGroupModel
	Size() int
	// Update integrates one step and refills the firing set.
	Update(step int64)
	// Firing returns the indices of the neurons that fired during the last
	// Update, re-sliced to the fired count (no sentinel terminator).
	Firing() []int32
	// AddInput accumulates synaptic current onto a neuron; it takes effect
	// at the next Update.
	AddInput(neuron int32, current float64)
	SpikeCount() uint64
}

// IRateGroup is implemented by groups whose firing is rate-driven.
type IRateGroup interface {
	SetRate(hz float64)
}

// IBiasGroup is implemented by groups with a constant bias current.
type IBiasGroup interface {
	SetBias(current float64)
}

type groupModel string

type IGroupModel interface {
	getGroupModel() groupModel
	String() string
}

// this is just for preventing simple string from being used as IGroupModel
func (model groupModel) getGroupModel() groupModel {
	return model
}

func (model groupModel) String() string {
	return string(model)
}

// add group models here
const (
	LIF_GROUP     = groupModel("lif")
	POISSON_GROUP = groupModel("poisson")
)

var GROUP_MODEL_MAP = map[string]IGroupModel{
	"lif":     LIF_GROUP,
	"poisson": POISSON_GROUP,
}
