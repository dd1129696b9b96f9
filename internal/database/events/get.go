package events

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/database"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

// GetEvents lists events ordered by start time. The lower bound keeps
// recurring events regardless of their anchor date, since they can occur in
// any range.
func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		OrderBy("start_time")

	if filter.Start != nil {
		qb = qb.Where(sq.Or{
			sq.GtOrEq{"start_time": *filter.Start},
			sq.Eq{"is_recurring": true},
		})
	}
	if filter.End != nil {
		qb = qb.Where(sq.LtOrEq{"start_time": *filter.End})
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		var err error
		if res[i], err = mapToEvent(d); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (*Repository) GetEventsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": ids}).
		OrderBy("start_time")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		var err error
		if res[i], err = mapToEvent(d); err != nil {
			return nil, err
		}
	}

	return res, nil
}
