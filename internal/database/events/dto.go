package events

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
)

type eventDTO struct {
	ID            int64
	Name          string
	StartTime     time.Time
	Duration      int
	IsRecurring   bool
	RecurringDays []string
}

func mapToEvent(dto *eventDTO) (*model.Event, error) {
	days, err := model.ParseDays(dto.RecurringDays)
	if err != nil {
		return nil, fmt.Errorf("stored recurring days: %w", err)
	}

	return &model.Event{
		ID: dto.ID,
		EventCreate: model.EventCreate{
			Name:      dto.Name,
			StartTime: dto.StartTime.UTC(),
			Duration:  dto.Duration,
			Recurring: dto.IsRecurring,
			Days:      days,
		},
	}, nil
}
