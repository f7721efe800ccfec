package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/db"
	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/repository"
)

// testStore bundles a fresh in-memory database with the repositories
// the services are built on.
type testStore struct {
	conn        *sqlx.DB
	users       repository.UserRepository
	habits      repository.HabitRepository
	completions repository.CompletionRepository
	settings    repository.SettingsRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// A single connection keeps every query on the same in-memory DB.
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))

	return &testStore{
		conn:        conn,
		users:       repository.NewUserRepository(conn),
		habits:      repository.NewHabitRepository(conn),
		completions: repository.NewCompletionRepository(conn),
		settings:    repository.NewSettingsRepository(conn),
	}
}

func (s *testStore) addUser(t *testing.T, id, email string) *model.User {
	t.Helper()

	user := &model.User{ID: id, Email: email, PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, s.users.Create(user))

	return user
}
