package events

import "github.com/SergeyKozhin/event-scheduler-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"name",
		"start_time",
		"duration",
		"is_recurring",
		"recurring_days",
	).
	From(database.EventsTable)
