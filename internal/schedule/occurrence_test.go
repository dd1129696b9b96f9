package schedule

import (
	"testing"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	s, e := Span(&model.EventCreate{StartTime: start, Duration: 60})
	assert.Equal(t, start, s)
	assert.Equal(t, start.Add(time.Hour), e)

	s, e = Span(&model.EventCreate{StartTime: start, Duration: 1440})
	assert.Equal(t, start, s)
	assert.Equal(t, start.Add(24*time.Hour), e)
}

func TestTimeOfDaySpan(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		duration  int
		wantStart int
		wantEnd   int
	}{
		{
			name:      "morning event",
			start:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			duration:  90,
			wantStart: 540,
			wantEnd:   630,
		},
		{
			name:      "runs up to midnight",
			start:     time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			duration:  60,
			wantStart: 1380,
			wantEnd:   1440,
		},
		{
			name:      "full day from midnight",
			start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			duration:  1440,
			wantStart: 0,
			wantEnd:   1440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := TimeOfDaySpan(&model.EventCreate{StartTime: tt.start, Duration: tt.duration})
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestOccursOn(t *testing.T) {
	recurring := &model.EventCreate{
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Duration:  60,
		Recurring: true,
		Days:      model.Monday | model.Wednesday,
	}

	assert.True(t, OccursOn(recurring, model.Monday))
	assert.True(t, OccursOn(recurring, model.Wednesday))
	assert.False(t, OccursOn(recurring, model.Friday))

	single := &model.EventCreate{
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Duration:  60,
	}
	assert.False(t, OccursOn(single, model.Monday))
}

func TestValidateTiming(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		event     model.EventCreate
		wantField string
	}{
		{
			name:  "valid single",
			event: model.EventCreate{Name: "a", StartTime: start, Duration: 60},
		},
		{
			name:  "valid recurring",
			event: model.EventCreate{Name: "a", StartTime: start, Duration: 60, Recurring: true, Days: model.Monday},
		},
		{
			name:  "valid full day",
			event: model.EventCreate{Name: "a", StartTime: start, Duration: 1440},
		},
		{
			name:      "zero duration",
			event:     model.EventCreate{Name: "a", StartTime: start, Duration: 0},
			wantField: "duration",
		},
		{
			name:      "longer than a day",
			event:     model.EventCreate{Name: "a", StartTime: start, Duration: 1441},
			wantField: "duration",
		},
		{
			name:      "recurring without days",
			event:     model.EventCreate{Name: "a", StartTime: start, Duration: 60, Recurring: true},
			wantField: "recurring_days",
		},
		{
			name:      "days without recurrence",
			event:     model.EventCreate{Name: "a", StartTime: start, Duration: 60, Days: model.Monday},
			wantField: "recurring_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiming(&tt.event)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
