package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDays(t *testing.T) {
	// Order is irrelevant and duplicates collapse; Codes always comes back
	// in canonical order.
	s, err := ParseDays([]string{"WE", "MO", "WE", "MO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"MO", "WE"}, s.Codes())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "MO,WE", s.String())

	s, err = ParseDays(nil)
	require.NoError(t, err)
	assert.True(t, s.Empty())

	_, err = ParseDays([]string{"MO", "XX"})
	assert.Error(t, err)
}

func TestDaySetOperations(t *testing.T) {
	s := Monday.Add(Wednesday)

	assert.True(t, s.Has(Monday))
	assert.True(t, s.Has(Wednesday))
	assert.False(t, s.Has(Friday))

	assert.True(t, s.Intersects(Wednesday|Friday))
	assert.False(t, s.Intersects(Tuesday|Thursday))
}

func TestDayOf(t *testing.T) {
	// 2024-01-01 is a Monday.
	assert.Equal(t, Monday, DayOf(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, DayOf(time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)))

	// The weekday is taken in UTC regardless of the presented location.
	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, Tuesday, DayOf(time.Date(2024, 1, 1, 20, 0, 0, 0, est)))
}
