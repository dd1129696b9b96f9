package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/emersion/go-ical"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	eventsService eventsService
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, info *model.EventCreate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	ActiveEvents(ctx context.Context, at time.Time) ([]*model.Event, error)
	Calendar(ctx context.Context) (*ical.Calendar, error)
}

func NewApi(logger *zap.SugaredLogger, eventsService eventsService) (*Api, error) {
	a := &Api{
		logger:        logger,
		eventsService: eventsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", a.createEventHandler)
		r.Get("/", a.getEventsHandler)
		r.Get("/active", a.getActiveEventsHandler)
		r.Get("/calendar.ics", a.exportCalendarHandler)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getEventHandler)
			r.Put("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
