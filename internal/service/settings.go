package service

import (
	"errors"
	"fmt"

	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/repository"
	"github.com/habitflow/habitflow/internal/validation"
)

// SettingsUpdate is a partial update; nil fields are left untouched.
type SettingsUpdate struct {
	EmailNotificationsEnabled *bool   `json:"email_notifications_enabled"`
	NotificationTime          *string `json:"notification_time"`
}

type SettingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored settings, or the defaults when the user has
// never written any. Nothing is persisted on read.
func (s *SettingsService) Get(userID string) (*model.UserSettings, error) {
	settings, err := s.repo.ByUserID(userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return model.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, nil
}

// Update merges the supplied fields over the current (or default)
// settings and upserts the row.
func (s *SettingsService) Update(userID string, update SettingsUpdate) (*model.UserSettings, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if update.EmailNotificationsEnabled != nil {
		settings.EmailNotificationsEnabled = *update.EmailNotificationsEnabled
	}
	if update.NotificationTime != nil {
		err = validation.ValidateClockTime("notification_time", *update.NotificationTime)
		if err != nil {
			return nil, err
		}
		settings.NotificationTime = *update.NotificationTime
	}

	err = s.repo.Upsert(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return s.repo.ByUserID(userID)
}
