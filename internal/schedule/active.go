package schedule

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

// FindActive returns the events whose occupied time contains instant, in the
// order they were given. instant must already be UTC; the engine performs no
// timezone conversion. Bounds follow the same half-open semantics as the
// conflict check: active at the start minute, no longer active at the end.
func FindActive(events []*model.Event, instant time.Time) ([]*model.Event, error) {
	instant = instant.UTC()
	day := model.DayOf(instant)
	minute := instant.Hour()*60 + instant.Minute()

	var active []*model.Event
	for _, e := range events {
		if err := ValidateTiming(&e.EventCreate); err != nil {
			return nil, fmt.Errorf("event %v: %w", e.ID, err)
		}

		if e.Recurring {
			start, end := TimeOfDaySpan(&e.EventCreate)
			if OccursOn(&e.EventCreate, day) && start <= minute && minute < end {
				active = append(active, e)
			}
			continue
		}

		start, end := Span(&e.EventCreate)
		if !instant.Before(start) && instant.Before(end) {
			active = append(active, e)
		}
	}

	return active, nil
}
