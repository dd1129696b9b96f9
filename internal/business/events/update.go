package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/schedule"
	"github.com/jackc/pgx/v4"
)

// UpdateEvent replaces the stored event with info after re-running the
// conflict check. The stored version itself is excluded, so an update that
// keeps the same time range passes. Same transactional guarantee as create.
func (s *Service) UpdateEvent(ctx context.Context, id int64, info *model.EventCreate) (*model.Event, error) {
	if err := schedule.ValidateTiming(info); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := s.eventsRepository.GetEventByID(ctx, tx, id); err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	existing, err := s.eventsRepository.GetEvents(ctx, tx, model.EventsFilter{})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	conflicts, err := schedule.FindConflicts(info, existing, id)
	if err != nil {
		return nil, err
	}
	if len(conflicts) != 0 {
		return nil, &schedule.ConflictError{Conflicts: conflicts}
	}

	event := &model.Event{ID: id, EventCreate: *info}
	if err := s.eventsRepository.UpdateEvent(ctx, tx, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return event, nil
}
