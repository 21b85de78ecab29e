package events

import (
	"fmt"
	"log"
	"spikesim/interfaces"
	"spikesim/util/logger"
)

// StepCurrentEvent sets a group's constant bias current when the world
// reaches its step.
type StepCurrentEvent struct {
	step     int64
	targetId string
	current  float64
}

func NewStepCurrentEvent(step int64, targetId string, current float64) interfaces.IEvent {
	return &StepCurrentEvent{step: step, targetId: targetId, current: current}
}

func (ev *StepCurrentEvent) Step() int64 {
	return ev.step
}

func (ev *StepCurrentEvent) Type() interfaces.IEventType {
	return interfaces.STEP_CURRENT_EVENT
}

func (ev *StepCurrentEvent) TargetId() string {
	return ev.targetId
}

func (ev *StepCurrentEvent) Execute(world interfaces.IWorld) {
	group, ok := world.Groups()[ev.targetId]
	if !ok {
		log.Panicf("step current event targets unknown group %v", ev.targetId)
	}
	biasGroup, ok := group.(interfaces.IBiasGroup)
	if !ok {
		log.Panicf("step current event targets group %v which has no bias current", ev.targetId)
	}
	biasGroup.SetBias(ev.current)
	logger.AuditStimulus(ev.targetId, ev.Type(), fmt.Sprintf("bias current set to %v", ev.current), ev.step)
}
