package schedule

import (
	"testing"
	"time"

	"github.com/SergeyKozhin/event-scheduler-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday, 2024-01-03 a Wednesday, 2024-01-05 a Friday.
func day(d, hour, min int) time.Time {
	return time.Date(2024, 1, d, hour, min, 0, 0, time.UTC)
}

func single(id int64, name string, start time.Time, duration int) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			Name:      name,
			StartTime: start,
			Duration:  duration,
		},
	}
}

func recurring(id int64, name string, start time.Time, duration int, days model.DaySet) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			Name:      name,
			StartTime: start,
			Duration:  duration,
			Recurring: true,
			Days:      days,
		},
	}
}

func TestFindConflicts_HalfOpenBoundary(t *testing.T) {
	existing := []*model.Event{single(1, "morning", day(1, 10, 0), 60)}

	// Touching intervals do not overlap.
	touching := &single(0, "next", day(1, 11, 0), 60).EventCreate
	conflicts, err := FindConflicts(touching, existing, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// One minute earlier does.
	overlapping := &single(0, "next", day(1, 10, 59), 61).EventCreate
	conflicts, err = FindConflicts(overlapping, existing, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(1), conflicts[0].EventID)
	assert.Equal(t, "morning", conflicts[0].Name)
	assert.Equal(t, day(1, 10, 0), conflicts[0].Start)
	assert.Equal(t, day(1, 11, 0), conflicts[0].End)
	assert.False(t, conflicts[0].Recurring)
}

func TestFindConflicts_Symmetry(t *testing.T) {
	a := single(1, "a", day(1, 10, 0), 90)
	b := single(2, "b", day(1, 11, 0), 60)

	aAgainstB, err := FindConflicts(&a.EventCreate, []*model.Event{b}, 0)
	require.NoError(t, err)
	bAgainstA, err := FindConflicts(&b.EventCreate, []*model.Event{a}, 0)
	require.NoError(t, err)

	assert.Len(t, aAgainstB, 1)
	assert.Len(t, bAgainstA, 1)
}

func TestFindConflicts_ExcludeSelf(t *testing.T) {
	stored := single(7, "standup", day(1, 9, 0), 30)

	// Re-submitting the unchanged range as an update of itself.
	conflicts, err := FindConflicts(&stored.EventCreate, []*model.Event{stored}, 7)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Without the exclusion it collides with its own stored version.
	conflicts, err = FindConflicts(&stored.EventCreate, []*model.Event{stored}, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflicts_DifferentDates(t *testing.T) {
	existing := []*model.Event{single(1, "monday", day(1, 10, 0), 60)}

	candidate := &single(0, "tuesday", day(2, 10, 0), 60).EventCreate
	conflicts, err := FindConflicts(candidate, existing, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_RecurringIntersection(t *testing.T) {
	existing := []*model.Event{
		recurring(1, "standup", day(1, 9, 0), 60, model.Monday|model.Wednesday),
	}

	// Shared Wednesday, overlapping time of day.
	candidate := &recurring(0, "review", day(8, 9, 30), 60, model.Wednesday|model.Friday).EventCreate
	conflicts, err := FindConflicts(candidate, existing, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.True(t, conflicts[0].Recurring)

	// No shared day, same time of day.
	candidate = &recurring(0, "review", day(8, 9, 30), 60, model.Tuesday|model.Thursday).EventCreate
	conflicts, err = FindConflicts(candidate, existing, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Shared day, touching times.
	candidate = &recurring(0, "review", day(8, 10, 0), 60, model.Wednesday).EventCreate
	conflicts, err = FindConflicts(candidate, existing, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_MixedPair(t *testing.T) {
	wednesdayMeeting := single(0, "one-off", day(3, 9, 30), 30)

	// Recurring on the candidate's weekday and overlapping in time.
	existing := []*model.Event{recurring(1, "standup", day(1, 9, 0), 60, model.Wednesday)}
	conflicts, err := FindConflicts(&wednesdayMeeting.EventCreate, existing, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// Recurring on other weekdays only.
	existing = []*model.Event{recurring(1, "standup", day(1, 9, 0), 60, model.Monday|model.Friday)}
	conflicts, err = FindConflicts(&wednesdayMeeting.EventCreate, existing, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Same rule with candidate and existing swapped.
	existingSingle := []*model.Event{single(1, "one-off", day(3, 9, 30), 30)}
	candidate := &recurring(0, "standup", day(1, 9, 0), 60, model.Wednesday).EventCreate
	conflicts, err = FindConflicts(candidate, existingSingle, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflicts_PreservesOrder(t *testing.T) {
	existing := []*model.Event{
		single(3, "third", day(1, 10, 30), 60),
		single(1, "first", day(1, 10, 0), 60),
		single(2, "second", day(1, 9, 30), 60),
	}

	candidate := &single(0, "candidate", day(1, 9, 0), 1440).EventCreate
	conflicts, err := FindConflicts(candidate, existing, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 3)
	assert.Equal(t, int64(3), conflicts[0].EventID)
	assert.Equal(t, int64(1), conflicts[1].EventID)
	assert.Equal(t, int64(2), conflicts[2].EventID)
}

func TestFindConflicts_InvalidCandidate(t *testing.T) {
	candidate := &model.EventCreate{
		Name:      "broken",
		StartTime: day(1, 10, 0),
		Duration:  60,
		Recurring: true,
	}

	_, err := FindConflicts(candidate, nil, 0)
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "recurring_days", validationErr.Field)
}

func TestConflictMessage(t *testing.T) {
	c := Conflict{
		EventID:   1,
		Name:      "standup",
		Start:     day(1, 9, 0),
		End:       day(1, 10, 0),
		Recurring: true,
	}

	assert.Equal(t,
		"Conflict with event 'standup' (from 2024-01-01 09:00 to 2024-01-01 10:00, Recurring: true)",
		c.String(),
	)

	err := &ConflictError{Conflicts: []Conflict{c, c}}
	assert.Equal(t, c.String()+"; "+c.String(), err.Error())
}
