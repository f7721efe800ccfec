package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/model"
)

func TestSettingsByUserIDMissing(t *testing.T) {
	conn := newTestDB(t)
	repo := NewSettingsRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")

	_, err := repo.ByUserID("u1")
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestSettingsUpsert(t *testing.T) {
	conn := newTestDB(t)
	repo := NewSettingsRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")

	require.NoError(t, repo.Upsert(&model.UserSettings{
		UserID:                    "u1",
		EmailNotificationsEnabled: true,
		NotificationTime:          "07:30",
	}))

	got, err := repo.ByUserID("u1")
	require.NoError(t, err)
	assert.True(t, got.EmailNotificationsEnabled)
	assert.Equal(t, "07:30", got.NotificationTime)

	// Second write for the same user overwrites instead of failing.
	require.NoError(t, repo.Upsert(&model.UserSettings{
		UserID:                    "u1",
		EmailNotificationsEnabled: false,
		NotificationTime:          "21:00",
	}))

	got, err = repo.ByUserID("u1")
	require.NoError(t, err)
	assert.False(t, got.EmailNotificationsEnabled)
	assert.Equal(t, "21:00", got.NotificationTime)
}

func TestNotificationEnabledUserIDs(t *testing.T) {
	conn := newTestDB(t)
	repo := NewSettingsRepository(conn)

	seedUser(t, conn, "u1", "u1@example.com")
	seedUser(t, conn, "u2", "u2@example.com")
	seedUser(t, conn, "u3", "u3@example.com")

	require.NoError(t, repo.Upsert(&model.UserSettings{
		UserID: "u1", EmailNotificationsEnabled: true, NotificationTime: "09:00",
	}))
	require.NoError(t, repo.Upsert(&model.UserSettings{
		UserID: "u2", EmailNotificationsEnabled: false, NotificationTime: "09:00",
	}))

	ids, err := repo.NotificationEnabledUserIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, ids)
}
