package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/pkg/validator"
	"github.com/emersion/go-ical"
	"github.com/go-chi/chi/v5"
)

type eventReq struct {
	Name          string   `json:"name"`
	StartTime     dateTime `json:"start_time"`
	Duration      int      `json:"duration"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringDays []string `json:"recurring_days"`
}

// readEventRequest decodes and validates an event payload, reporting the
// response itself on failure. The recurrence invariant is enforced here so the
// service always receives a well-formed candidate.
func (a *Api) readEventRequest(w http.ResponseWriter, r *http.Request) (*model.EventCreate, bool) {
	req := &eventReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil, false
	}

	v := validator.New()
	v.Check(req.Name != "", "name", "must be provided")
	v.Check(len(req.Name) <= 100, "name", "must not be longer than 100 characters")
	v.Check(!time.Time(req.StartTime).IsZero(), "start_time", "must be provided")
	v.Check(req.Duration >= 1, "duration", "must be at least 1 minute")
	v.Check(req.Duration <= 1440, "duration", "must not be longer than a day")

	days, err := model.ParseDays(req.RecurringDays)
	if err != nil {
		v.AddError("recurring_days", err.Error())
	}
	if req.IsRecurring {
		v.Check(len(req.RecurringDays) != 0, "recurring_days", "required for recurring events")
	} else {
		v.Check(len(req.RecurringDays) == 0, "recurring_days", "must be empty for non-recurring events")
	}

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return nil, false
	}

	return &model.EventCreate{
		Name:      req.Name,
		StartTime: time.Time(req.StartTime).UTC(),
		Duration:  req.Duration,
		Recurring: req.IsRecurring,
		Days:      days,
	}, true
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	info, ok := a.readEventRequest(w, r)
	if !ok {
		return
	}

	event, err := a.eventsService.CreateEvent(r.Context(), info)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	events, err := a.eventsService.GetEvents(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)
	if err := a.writeJSON(w, http.StatusOK, &eventsResp{Events: resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseEventID(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.GetEventByID(r.Context(), id)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseEventID(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info, ok := a.readEventRequest(w, r)
	if !ok {
		return
	}

	event, err := a.eventsService.UpdateEvent(r.Context(), id, info)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseEventID(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.eventsService.DeleteEvent(r.Context(), id); err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) getActiveEventsHandler(w http.ResponseWriter, r *http.Request) {
	at := time.Now().UTC()
	if v := r.URL.Query().Get("at"); v != "" {
		var err error
		at, err = time.Parse(dateTimeFormat, v)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid time format: %w", err))
			return
		}
	}

	events, err := a.eventsService.ActiveEvents(r.Context(), at)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)
	if err := a.writeJSON(w, http.StatusOK, &eventsResp{Events: resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) exportCalendarHandler(w http.ResponseWriter, r *http.Request) {
	cal, err := a.eventsService.Calendar(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("export calendar: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		a.logError(r, err)
	}
}

func parseEventID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid event id")
	}
	return id, nil
}

func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	res := &model.EventsFilter{}

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse(dateTimeFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid time format: %w", err)
		}
		t = t.UTC()
		res.Start = &t
	}

	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse(dateTimeFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid time format: %w", err)
		}
		t = t.UTC()
		res.End = &t
	}

	return res, nil
}
