package events

import (
	"context"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/database"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

// Service implements the event use cases on top of the pure schedule engine.
// The engine itself gives no atomicity guarantee for check-then-write, so
// Create and Update run the conflict check and the write inside a single
// serializable transaction.
type Service struct {
	db               database.PGX
	eventsRepository eventsRepository
	activeCache      activeEventsCache
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	GetEventsByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

type activeEventsCache interface {
	Get(ctx context.Context, at time.Time) ([]int64, error)
	Set(ctx context.Context, at time.Time, ids []int64) error
}

func NewService(db database.PGX, repo eventsRepository, cache activeEventsCache) *Service {
	return &Service{
		db:               db,
		eventsRepository: repo,
		activeCache:      cache,
	}
}
