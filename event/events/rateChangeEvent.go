package events

import (
	"fmt"
	"log"
	"spikesim/interfaces"
	"spikesim/util/logger"
)

// RateChangeEvent switches a rate-driven group to a new firing rate when the
// world reaches its step.
type RateChangeEvent struct {
	step     int64
	targetId string
	rateHz   float64
}

func NewRateChangeEvent(step int64, targetId string, rateHz float64) interfaces.IEvent {
	return &RateChangeEvent{step: step, targetId: targetId, rateHz: rateHz}
}

func (ev *RateChangeEvent) Step() int64 {
	return ev.step
}

func (ev *RateChangeEvent) Type() interfaces.IEventType {
	return interfaces.RATE_CHANGE_EVENT
}

func (ev *RateChangeEvent) TargetId() string {
	return ev.targetId
}

func (ev *RateChangeEvent) Execute(world interfaces.IWorld) {
	group, ok := world.Groups()[ev.targetId]
	if !ok {
		log.Panicf("rate change event targets unknown group %v", ev.targetId)
	}
	rateGroup, ok := group.(interfaces.IRateGroup)
	if !ok {
		log.Panicf("rate change event targets group %v which is not rate-driven", ev.targetId)
	}
	rateGroup.SetRate(ev.rateHz)
	logger.AuditStimulus(ev.targetId, ev.Type(), fmt.Sprintf("rate set to %v Hz", ev.rateHz), ev.step)
}
