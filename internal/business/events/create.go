package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/schedule"
	"github.com/jackc/pgx/v4"
)

// CreateEvent checks the candidate against every stored event and persists it
// when nothing collides. A collision returns *schedule.ConflictError. The
// check and the insert share a serializable transaction so two concurrent
// creations cannot both pass against snapshots missing each other's write.
func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	if err := schedule.ValidateTiming(info); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	existing, err := s.eventsRepository.GetEvents(ctx, tx, model.EventsFilter{})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	conflicts, err := schedule.FindConflicts(info, existing, 0)
	if err != nil {
		return nil, err
	}
	if len(conflicts) != 0 {
		return nil, &schedule.ConflictError{Conflicts: conflicts}
	}

	id, err := s.eventsRepository.CreateEvent(ctx, tx, info)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &model.Event{ID: id, EventCreate: *info}, nil
}
