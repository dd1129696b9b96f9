package events

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/config"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/SergeyKozhin/event-scheduler-backend/internal/schedule"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// Calendar renders every stored event as an iCalendar object. Recurring
// events carry a weekly RRULE over their weekday set, anchored at the stored
// start time.
func (s *Service) Calendar(ctx context.Context) (*ical.Calendar, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, model.EventsFilter{})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//event-scheduler//NONSGML v1.0//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropName, config.CalendarName())

	now := time.Now().UTC()
	for _, e := range events {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, fmt.Sprintf("%v@event-scheduler", e.ID))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, now)
		ev.Props.SetText(ical.PropSummary, e.Name)

		start, end := schedule.Span(&e.EventCreate)
		ev.Props.SetDateTime(ical.PropDateTimeStart, start)
		ev.Props.SetDateTime(ical.PropDateTimeEnd, end)

		if e.Recurring {
			rule, err := weeklyRule(&e.EventCreate)
			if err != nil {
				return nil, err
			}
			// Set raw to keep the BYDAY commas unescaped.
			prop := ical.NewProp(ical.PropRecurrenceRule)
			prop.Value = rule
			ev.Props.Set(prop)
		}

		cal.Children = append(cal.Children, ev.Component)
	}

	return cal, nil
}

var rruleDays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

func weeklyRule(e *model.EventCreate) (string, error) {
	days := make([]rrule.Weekday, 0, e.Days.Len())
	for _, code := range e.Days.Codes() {
		days = append(days, rruleDays[code])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Byweekday: days,
		Dtstart:   e.StartTime.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("creating rule: %w", err)
	}

	// String() would prepend a DTSTART line; the property takes the rule only.
	return rule.OrigOptions.RRuleString(), nil
}
