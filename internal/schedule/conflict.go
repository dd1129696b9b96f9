package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

const conflictTimeFormat = "2006-01-02 15:04"

// Conflict describes one existing event that collides with a candidate.
type Conflict struct {
	EventID   int64
	Name      string
	Start     time.Time
	End       time.Time
	Recurring bool
}

func (c Conflict) String() string {
	return fmt.Sprintf("Conflict with event '%s' (from %s to %s, Recurring: %v)",
		c.Name,
		c.Start.UTC().Format(conflictTimeFormat),
		c.End.UTC().Format(conflictTimeFormat),
		c.Recurring,
	)
}

// ConflictError is the business rejection returned when a candidate collides
// with existing events. It is not an engine fault.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	msgs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		msgs[i] = c.String()
	}
	return strings.Join(msgs, "; ")
}

// FindConflicts checks the candidate against every event in existing and
// returns one Conflict per collision, preserving the order of existing. The
// event whose ID equals excludeID is skipped, so an update does not collide
// with its own stored version; pass 0 for a not-yet-persisted candidate.
//
// The check is symmetric in the pair and never mutates its inputs. The only
// error it can return is a *model.ValidationError for an event violating the
// timing invariants.
func FindConflicts(candidate *model.EventCreate, existing []*model.Event, excludeID int64) ([]Conflict, error) {
	if err := ValidateTiming(candidate); err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for _, e := range existing {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if err := ValidateTiming(&e.EventCreate); err != nil {
			return nil, fmt.Errorf("event %v: %w", e.ID, err)
		}

		if !collides(candidate, &e.EventCreate) {
			continue
		}

		start, end := Span(&e.EventCreate)
		conflicts = append(conflicts, Conflict{
			EventID:   e.ID,
			Name:      e.Name,
			Start:     start,
			End:       end,
			Recurring: e.Recurring,
		})
	}

	return conflicts, nil
}

// collides applies the applicability rules for the pair's recurrence shapes,
// then the half-open overlap test. Touching intervals do not overlap.
func collides(a, b *model.EventCreate) bool {
	switch {
	case !a.Recurring && !b.Recurring:
		// Comparable only when both fall on the same UTC calendar date.
		if !sameDate(a.StartTime, b.StartTime) {
			return false
		}
		aStart, aEnd := Span(a)
		bStart, bEnd := Span(b)
		return aStart.Before(bEnd) && bStart.Before(aEnd)

	case a.Recurring && b.Recurring:
		// Comparable only when the weekday sets share a day; dates are
		// irrelevant, only time of day counts.
		if !a.Days.Intersects(b.Days) {
			return false
		}
		return timeOfDayOverlaps(a, b)

	default:
		// Mixed pair: the single event's weekday must be one of the
		// recurring event's days.
		recurring, single := a, b
		if b.Recurring {
			recurring, single = b, a
		}
		if !OccursOn(recurring, model.DayOf(single.StartTime)) {
			return false
		}
		return timeOfDayOverlaps(a, b)
	}
}

func timeOfDayOverlaps(a, b *model.EventCreate) bool {
	aStart, aEnd := TimeOfDaySpan(a)
	bStart, bEnd := TimeOfDaySpan(b)
	return aStart < bEnd && bStart < aEnd
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
