package repository

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/db"
	"github.com/habitflow/habitflow/internal/model"
)

// newTestDB opens an isolated in-memory SQLite database with the real
// migrations applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// A single connection keeps every query on the same in-memory DB.
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))

	return conn
}

func seedUser(t *testing.T, conn *sqlx.DB, id, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewUserRepository(conn).Create(user))

	return user
}

func seedHabit(t *testing.T, conn *sqlx.DB, id, userID, frequency string) *model.Habit {
	t.Helper()

	now := time.Now()
	habit := &model.Habit{
		ID:        id,
		UserID:    userID,
		Name:      "habit " + id,
		Frequency: frequency,
		AllDay:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewHabitRepository(conn).Create(habit))

	return habit
}

func seedCompletion(t *testing.T, conn *sqlx.DB, id, habitID, userID, date string) *model.Completion {
	t.Helper()

	completion := &model.Completion{
		ID:          id,
		HabitID:     habitID,
		UserID:      userID,
		Date:        date,
		CompletedAt: time.Now(),
	}
	require.NoError(t, NewCompletionRepository(conn).Create(completion))

	return completion
}
