package event

import (
	"math"
	"spikesim/interfaces"
)

// Schedule holds the one-shot stimulus events of a run, ordered by step.
type Schedule struct {
	events               []interfaces.IEvent
	newEvents            []interfaces.IEvent
	earliestNewEventStep int64
}

func NewSchedule() *Schedule {
	return &Schedule{make([]interfaces.IEvent, 0, 100), make([]interfaces.IEvent, 0, 20), math.MaxInt64}
}

func (schedule *Schedule) Add(events ...interfaces.IEvent) {
	for _, event := range events {
		schedule.newEvents = append(schedule.newEvents, event)
		if schedule.earliestNewEventStep > event.Step() {
			schedule.earliestNewEventStep = event.Step()
		}
	}
}

// DueEvents returns and removes every event scheduled up to and including the
// given step; if steps are equal, insertion order is kept.
func (schedule *Schedule) DueEvents(step int64) []interfaces.IEvent {
	// new events strictly in the future can wait for a later merge
	if schedule.earliestNewEventStep <= step {
		schedule.fitNewEventsToSchedule()
	}
	due := 0
	for due < len(schedule.events) && schedule.events[due].Step() <= step {
		due++
	}
	if due == 0 {
		return nil
	}
	dueEvents := schedule.events[:due]
	schedule.events = schedule.events[due:]
	return dueEvents
}

func (schedule *Schedule) fitNewEventsToSchedule() {
	if len(schedule.newEvents) == 0 {
		return
	}

	// first sort new events
	schedule.newEvents = MergeSort(schedule.newEvents)

	// if schedule is empty, simply make new events the schedule
	if len(schedule.events) == 0 {
		schedule.events = schedule.newEvents
	} else if schedule.events[len(schedule.events)-1].Step() <= schedule.newEvents[0].Step() {
		// last elem from schedule is earlier than first new event, simply append both lists
		schedule.events = append(schedule.events, schedule.newEvents...)
	} else {
		// merge schedule with sorted new events
		schedule.events = Merge(schedule.events, schedule.newEvents)
	}
	schedule.newEvents = make([]interfaces.IEvent, 0, 20)
	schedule.earliestNewEventStep = math.MaxInt64
}

func MergeSort(src []interfaces.IEvent) []interfaces.IEvent {
	if len(src) <= 1 {
		return src
	}
	mid := len(src) / 2
	return Merge(MergeSort(src[:mid]), MergeSort(src[mid:]))
}

func Merge(left, right []interfaces.IEvent) []interfaces.IEvent {
	result := make([]interfaces.IEvent, 0, len(left)+len(right))
	var l, r int
	for l < len(left) || r < len(right) {
		if l < len(left) && r < len(right) {
			if left[l].Step() <= right[r].Step() {
				result = append(result, left[l])
				l++
			} else {
				result = append(result, right[r])
				r++
			}
		} else if l < len(left) {
			result = append(result, left[l:]...)
			break
		} else if r < len(right) {
			result = append(result, right[r:]...)
			break
		}
	}
	return result
}

func (schedule *Schedule) Length() int {
	return len(schedule.events) + len(schedule.newEvents)
}
