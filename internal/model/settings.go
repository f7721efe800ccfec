package model

import (
	"time"
)

const DefaultNotificationTime = "09:00"

type UserSettings struct {
	UserID                    string    `db:"user_id" json:"user_id"`
	EmailNotificationsEnabled bool      `db:"email_notifications_enabled" json:"email_notifications_enabled"`
	NotificationTime          string    `db:"notification_time" json:"notification_time"`
	CreatedAt                 time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultSettings is what callers see before a user has stored anything.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:                    userID,
		EmailNotificationsEnabled: true,
		NotificationTime:          DefaultNotificationTime,
	}
}
