package api

import (
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

type eventsResp struct {
	Events []*eventResp `json:"events"`
}

type eventResp struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	StartTime     dateTime `json:"start_time"`
	Duration      int      `json:"duration"`
	IsRecurring   bool     `json:"is_recurring"`
	RecurringDays []string `json:"recurring_days"`
}

func mapToEventResp(e *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:            e.ID,
		Name:          e.Name,
		StartTime:     dateTime(e.StartTime),
		Duration:      e.Duration,
		IsRecurring:   e.Recurring,
		RecurringDays: e.Days.Codes(),
	}, nil
}
