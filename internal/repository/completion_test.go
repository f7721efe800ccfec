package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/model"
)

func TestCompletionCreateDuplicate(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")

	err := repo.Create(&model.Completion{
		ID:          uuid.New().String(),
		HabitID:     "h1",
		UserID:      "u1",
		Date:        "2024-01-03",
		CompletedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// Exactly one row survived.
	completions, err := repo.List("u1", CompletionFilter{})
	require.NoError(t, err)
	assert.Len(t, completions, 1)
}

func TestCompletionSameDateDifferentHabits(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedHabit(t, conn, "h2", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")
	seedCompletion(t, conn, "c2", "h2", "u1", "2024-01-03")

	completions, err := repo.List("u1", CompletionFilter{})
	require.NoError(t, err)
	assert.Len(t, completions, 2)
}

func TestCompletionListFilters(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedHabit(t, conn, "h2", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-01")
	seedCompletion(t, conn, "c2", "h1", "u1", "2024-01-02")
	seedCompletion(t, conn, "c3", "h1", "u1", "2024-01-03")
	seedCompletion(t, conn, "c4", "h2", "u1", "2024-01-02")

	// Habit filter
	completions, err := repo.List("u1", CompletionFilter{HabitID: "h2"})
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, "c4", completions[0].ID)

	// Date range is inclusive on both bounds
	completions, err = repo.List("u1", CompletionFilter{StartDate: "2024-01-02", EndDate: "2024-01-03"})
	require.NoError(t, err)
	assert.Len(t, completions, 3)

	// Combined
	completions, err = repo.List("u1", CompletionFilter{HabitID: "h1", StartDate: "2024-01-02", EndDate: "2024-01-02"})
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, "c2", completions[0].ID)
}

func TestCompletionListOrderedByDateDescending(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-01")
	seedCompletion(t, conn, "c3", "h1", "u1", "2024-01-03")
	seedCompletion(t, conn, "c2", "h1", "u1", "2024-01-02")

	completions, err := repo.List("u1", CompletionFilter{})
	require.NoError(t, err)
	require.Len(t, completions, 3)
	assert.Equal(t, "2024-01-03", completions[0].Date)
	assert.Equal(t, "2024-01-02", completions[1].Date)
	assert.Equal(t, "2024-01-01", completions[2].Date)
}

func TestCompletionListScopedToUser(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")

	completions, err := repo.List("u2", CompletionFilter{})
	require.NoError(t, err)
	assert.Empty(t, completions)
}

func TestCompletionDeleteIdempotent(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")

	deleted, err := repo.Delete("u1", "c1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete("u1", "c1")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete("u1", "never-existed")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCompletionDeleteOtherUsers(t *testing.T) {
	conn := newTestDB(t)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")

	deleted, err := repo.Delete("u2", "c1")
	require.NoError(t, err)
	assert.False(t, deleted)

	// Still there for its owner.
	completions, err := repo.List("u1", CompletionFilter{})
	require.NoError(t, err)
	assert.Len(t, completions, 1)
}

func TestHabitDeleteCascadesCompletions(t *testing.T) {
	conn := newTestDB(t)
	habitRepo := NewHabitRepository(conn)
	repo := NewCompletionRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedHabit(t, conn, "h1", "u1", model.FrequencyDaily)
	seedCompletion(t, conn, "c1", "h1", "u1", "2024-01-03")

	require.NoError(t, habitRepo.Delete("u1", "h1"))

	completions, err := repo.List("u1", CompletionFilter{})
	require.NoError(t, err)
	assert.Empty(t, completions)
}
