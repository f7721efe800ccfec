package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/model"
)

func TestHabitCreateAndGet(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")

	targetDays := 3
	startTime := "08:00"
	now := time.Now()
	habit := &model.Habit{
		ID:           "h1",
		UserID:       "u1",
		Name:         "Morning run",
		Description:  "5k around the park",
		Frequency:    model.FrequencyWeekly,
		TargetDays:   &targetDays,
		SelectedDays: model.DayList{"monday", "wednesday", "friday"},
		AllDay:       false,
		StartTime:    &startTime,
		Icon:         "🏃",
		Category:     model.CategorySport,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(habit))

	got, err := repo.ByID("u1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "Morning run", got.Name)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)
	require.NotNil(t, got.TargetDays)
	assert.Equal(t, 3, *got.TargetDays)
	assert.Equal(t, model.DayList{"monday", "wednesday", "friday"}, got.SelectedDays)
	assert.False(t, got.AllDay)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, "08:00", *got.StartTime)
	assert.Nil(t, got.EndTime)
	assert.Equal(t, model.CategorySport, got.Category)
}

func TestHabitByIDOwnershipIsolation(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)

	_, err := repo.ByID("u2", "h1")
	assert.ErrorIs(t, err, ErrHabitNotFound)

	_, err = repo.ByID("u1", "missing")
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitsListScopedAndOrdered(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")

	old := &model.Habit{
		ID: "h1", UserID: "u1", Name: "older", Frequency: model.FrequencyDaily,
		CreatedAt: time.Now().Add(-time.Hour), UpdatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(old))
	seedHabit(t, conn, "h2", "u1", model.FrequencyDaily)
	seedHabit(t, conn, "h3", "u2", model.FrequencyDaily)

	habits, err := repo.Habits("u1")
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, "h2", habits[0].ID)
	assert.Equal(t, "h1", habits[1].ID)
}

func TestHabitUpdateOwnershipIsolation(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	habit := seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)

	habit.UserID = "u2"
	habit.Name = "hijacked"
	assert.ErrorIs(t, repo.Update(habit), ErrHabitNotFound)

	got, err := repo.ByID("u1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "habit h1", got.Name)
}

func TestHabitUpdateRefreshesTimestamp(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	habit := seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)

	before := habit.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	habit.Name = "renamed"
	require.NoError(t, repo.Update(habit))

	got, err := repo.ByID("u1", "h1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestHabitDelete(t *testing.T) {
	conn := newTestDB(t)
	repo := NewHabitRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)

	assert.ErrorIs(t, repo.Delete("u2", "h1"), ErrHabitNotFound)
	require.NoError(t, repo.Delete("u1", "h1"))
	assert.ErrorIs(t, repo.Delete("u1", "h1"), ErrHabitNotFound)
}
