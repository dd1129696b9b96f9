package model

import "time"

// EventCreate holds the user-settable fields of an event. StartTime is always
// UTC and Duration is in minutes, one day at most.
type EventCreate struct {
	Name      string
	StartTime time.Time
	Duration  int
	Recurring bool
	Days      DaySet
}

type Event struct {
	ID int64
	EventCreate
}

// End returns the absolute end of the event's stored interval.
func (e *EventCreate) End() time.Time {
	return e.StartTime.Add(time.Duration(e.Duration) * time.Minute)
}

// EventsFilter narrows event listings by an optional date range. Recurring
// events are never dropped by the lower bound, they stay candidates for any
// range.
type EventsFilter struct {
	Start *time.Time
	End   *time.Time
}
