package interfaces

type IEvent interface {
	Step() int64
	Type() IEventType
	TargetId() string
	// Execute executes the specific event.
	Execute(world IWorld)
}

type ISchedule interface {
	Add(events ...IEvent)
	// DueEvents returns the events scheduled for the given step, in
	// insertion order, and removes them from the schedule.
	DueEvents(step int64) []IEvent
	Length() int
}

type eventType string

type IEventType interface {
	getType() eventType
}

// this is just for preventing simple string from being used as IEventType
func (evType eventType) getType() eventType {
	return evType
}

// this is just for preventing simple string from being used as IEventType
func (evType eventType) String() string {
	return string(evType)
}

// add event types here
const (
	RATE_CHANGE_EVENT  = eventType("RateChangeEvent")
	STEP_CURRENT_EVENT = eventType("StepCurrentEvent")
)
