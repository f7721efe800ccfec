package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitflow/habitflow/internal/model"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository interface {
	ByUserID(userID string) (*model.UserSettings, error)
	Upsert(settings *model.UserSettings) error
	NotificationEnabledUserIDs() ([]string, error)
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) ByUserID(userID string) (*model.UserSettings, error) {
	settings := &model.UserSettings{}
	query := `SELECT * FROM user_settings WHERE user_id = $1`

	err := r.db.Get(settings, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}

	return settings, err
}

// Upsert creates the row on first write and overwrites it afterwards.
func (r *settingsRepository) Upsert(settings *model.UserSettings) error {
	query := `INSERT INTO user_settings (user_id, email_notifications_enabled, notification_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id) DO UPDATE
	          SET email_notifications_enabled = $2, notification_time = $3, updated_at = $5`

	now := time.Now()
	_, err := r.db.Exec(query,
		settings.UserID,
		settings.EmailNotificationsEnabled,
		settings.NotificationTime,
		now,
		now,
	)

	return err
}

// NotificationEnabledUserIDs lists every user the reminder sweep
// should consider.
func (r *settingsRepository) NotificationEnabledUserIDs() ([]string, error) {
	var userIDs []string
	query := `SELECT user_id FROM user_settings WHERE email_notifications_enabled = TRUE`

	err := r.db.Select(&userIDs, query)
	if err != nil {
		return nil, err
	}

	return userIDs, nil
}
