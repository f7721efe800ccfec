package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/model"
)

// Full pass through the stack: create a habit, mark three consecutive
// days, and read the numbers back.
func TestMetricsThreeDayStreak(t *testing.T) {
	store := newTestStore(t)
	habits := NewHabitService(store.habits)
	completions := NewCompletionService(store.completions, store.habits)
	svc := NewMetricsService(store.habits, store.completions)
	store.addUser(t, "u1", "u1@example.com")

	habit, err := habits.Create("u1", HabitInput{Name: "Read", Frequency: model.FrequencyDaily})
	require.NoError(t, err)

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err = completions.Create("u1", habit.ID, date)
		require.NoError(t, err)
	}

	m, err := svc.Compute("u1", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalHabits)
	assert.Equal(t, 1, m.CompletedToday)
	assert.Equal(t, 3, m.CurrentStreak)
	assert.Equal(t, 3, m.LongestStreak)
	assert.Equal(t, 1, m.HabitsByFrequency[model.FrequencyDaily])
	assert.Equal(t, 0, m.HabitsByFrequency[model.FrequencyWeekly])
	// 3 completions against a 30-day window for one daily habit.
	assert.InDelta(t, 10.0, m.CompletionRate, 0.001)

	require.Len(t, m.HabitStreaks, 1)
	assert.Equal(t, habit.ID, m.HabitStreaks[0].HabitID)
	assert.Equal(t, 3, m.HabitStreaks[0].Streak)
}

func TestMetricsScopedToUser(t *testing.T) {
	store := newTestStore(t)
	habits := NewHabitService(store.habits)
	completions := NewCompletionService(store.completions, store.habits)
	svc := NewMetricsService(store.habits, store.completions)
	store.addUser(t, "u1", "u1@example.com")
	store.addUser(t, "u2", "u2@example.com")

	habit, err := habits.Create("u1", HabitInput{Name: "Read", Frequency: model.FrequencyDaily})
	require.NoError(t, err)
	_, err = completions.Create("u1", habit.ID, "2024-01-03")
	require.NoError(t, err)

	m, err := svc.Compute("u2", "2024-01-03")
	require.NoError(t, err)
	assert.Zero(t, m.TotalHabits)
	assert.Zero(t, m.CompletedToday)
	assert.Zero(t, m.CurrentStreak)
}
