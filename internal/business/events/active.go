package events

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/schedule"
)

// ActiveEvents returns the events whose occupied time contains at. Results
// are cached per minute bucket; any cache failure falls back to a full
// evaluation and never fails the request.
func (s *Service) ActiveEvents(ctx context.Context, at time.Time) ([]*model.Event, error) {
	at = at.UTC()

	if ids, err := s.activeCache.Get(ctx, at); err == nil {
		events, err := s.eventsRepository.GetEventsByIDs(ctx, s.db, ids)
		if err == nil {
			return events, nil
		}
	}

	events, err := s.eventsRepository.GetEvents(ctx, s.db, model.EventsFilter{})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	active, err := schedule.FindActive(events, at)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(active))
	for i, e := range active {
		ids[i] = e.ID
	}
	_ = s.activeCache.Set(ctx, at, ids)

	return active, nil
}
