package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/database"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"name",
			"start_time",
			"duration",
			"is_recurring",
			"recurring_days",
		).
		Values(
			event.Name,
			event.StartTime,
			event.Duration,
			event.Recurring,
			event.Days.Codes(),
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
