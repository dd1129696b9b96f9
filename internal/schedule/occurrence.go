// Package schedule derives the time an event occupies and decides whether
// events collide or are active at an instant. Everything here is a pure
// function over already-validated events: no storage, no clocks, no shared
// state, so concurrent callers need no coordination.
package schedule

import (
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

const minutesPerDay = 24 * 60

// Span returns the absolute half-open interval [start, end) occupied by a
// single occurrence of the event, anchored at its stored start time.
func Span(e *model.EventCreate) (start, end time.Time) {
	return e.StartTime, e.End()
}

// TimeOfDaySpan strips the date and returns the occupied time of day as
// minutes from UTC midnight, half-open. end may be exactly 1440 when the
// event runs up to midnight; that ends the occurrence at the day boundary
// rather than spilling into the next weekday.
func TimeOfDaySpan(e *model.EventCreate) (start, end int) {
	t := e.StartTime.UTC()
	start = t.Hour()*60 + t.Minute()
	return start, start + e.Duration
}

// OccursOn reports whether a recurring event has an occurrence on the given
// weekday. Always false for non-recurring events.
func OccursOn(e *model.EventCreate, day model.DaySet) bool {
	return e.Recurring && e.Days.Has(day)
}

// ValidateTiming checks the invariants the engine relies on: duration within
// [1, 1440] and recurrence set non-empty exactly when the event is recurring.
// Violations surface as *model.ValidationError.
func ValidateTiming(e *model.EventCreate) error {
	if e.Duration < 1 || e.Duration > minutesPerDay {
		return &model.ValidationError{Field: "duration", Reason: "must be between 1 and 1440 minutes"}
	}
	if e.Recurring && e.Days.Empty() {
		return &model.ValidationError{Field: "recurring_days", Reason: "required for recurring events"}
	}
	if !e.Recurring && !e.Days.Empty() {
		return &model.ValidationError{Field: "recurring_days", Reason: "must be empty for non-recurring events"}
	}
	return nil
}
