package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/repository"
	"github.com/habitflow/habitflow/internal/validation"
)

// ErrSelectedDaysEmpty guards the rule that an existing day selection
// may be changed but never cleared entirely.
var ErrSelectedDaysEmpty = &validation.FieldError{
	Field:   "selected_days",
	Message: "at least one day must remain selected",
}

// HabitInput carries the validated fields for creating a habit.
type HabitInput struct {
	Name                string        `json:"name"`
	Description         string        `json:"description"`
	Frequency           string        `json:"frequency"`
	TargetDays          *int          `json:"target_days"`
	SelectedDays        model.DayList `json:"selected_days"`
	AllDay              *bool         `json:"all_day"`
	StartTime           *string       `json:"start_time"`
	EndTime             *string       `json:"end_time"`
	Icon                string        `json:"icon"`
	Category            string        `json:"category"`
	NotificationEnabled bool          `json:"notification_enabled"`
	ReminderTime        *string       `json:"reminder_time"`
}

// HabitUpdate carries a partial update; nil fields are left untouched.
type HabitUpdate struct {
	Name                *string        `json:"name"`
	Description         *string        `json:"description"`
	Frequency           *string        `json:"frequency"`
	TargetDays          *int           `json:"target_days"`
	SelectedDays        *model.DayList `json:"selected_days"`
	AllDay              *bool          `json:"all_day"`
	StartTime           *string        `json:"start_time"`
	EndTime             *string        `json:"end_time"`
	Icon                *string        `json:"icon"`
	Category            *string        `json:"category"`
	NotificationEnabled *bool          `json:"notification_enabled"`
	ReminderTime        *string        `json:"reminder_time"`
}

type HabitService struct {
	repo repository.HabitRepository
}

func NewHabitService(repo repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

func (s *HabitService) Create(userID string, input HabitInput) (*model.Habit, error) {
	err := validateHabitInput(&input)
	if err != nil {
		return nil, err
	}

	allDay := true
	if input.AllDay != nil {
		allDay = *input.AllDay
	}

	now := time.Now()
	habit := &model.Habit{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Name:                input.Name,
		Description:         input.Description,
		Frequency:           input.Frequency,
		TargetDays:          input.TargetDays,
		SelectedDays:        input.SelectedDays,
		AllDay:              allDay,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		Icon:                input.Icon,
		Category:            input.Category,
		NotificationEnabled: input.NotificationEnabled,
		ReminderTime:        input.ReminderTime,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err = s.repo.Create(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) ByID(userID, habitID string) (*model.Habit, error) {
	return s.repo.ByID(userID, habitID)
}

func (s *HabitService) Habits(userID string) ([]*model.Habit, error) {
	return s.repo.Habits(userID)
}

// ActiveOn returns the user's habits that apply to the given date.
func (s *HabitService) ActiveOn(userID string, date time.Time) ([]*model.Habit, error) {
	habits, err := s.repo.Habits(userID)
	if err != nil {
		return nil, err
	}

	active := make([]*model.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ActiveOn(date) {
			active = append(active, h)
		}
	}

	return active, nil
}

// Update overwrites only the supplied fields and refreshes the
// modification timestamp. A habit owned by another user behaves as
// missing.
func (s *HabitService) Update(userID, habitID string, update HabitUpdate) (*model.Habit, error) {
	habit, err := s.repo.ByID(userID, habitID)
	if err != nil {
		return nil, err
	}

	err = applyHabitUpdate(habit, update)
	if err != nil {
		return nil, err
	}

	habit.UpdatedAt = time.Now()
	err = s.repo.Update(habit)
	if err != nil {
		return nil, err
	}

	return s.repo.ByID(userID, habitID)
}

func (s *HabitService) Delete(userID, habitID string) error {
	return s.repo.Delete(userID, habitID)
}

func validateHabitInput(input *HabitInput) error {
	err := validation.ValidateHabitName(input.Name)
	if err != nil {
		return err
	}
	err = validation.ValidateFrequency(input.Frequency)
	if err != nil {
		return err
	}
	err = validation.ValidateCategory(input.Category)
	if err != nil {
		return err
	}
	err = validation.ValidateTargetDays(input.TargetDays)
	if err != nil {
		return err
	}
	err = validation.ValidateSelectedDays(input.SelectedDays)
	if err != nil {
		return err
	}
	for field, value := range map[string]*string{
		"start_time":    input.StartTime,
		"end_time":      input.EndTime,
		"reminder_time": input.ReminderTime,
	} {
		if value == nil {
			continue
		}
		err = validation.ValidateClockTime(field, *value)
		if err != nil {
			return err
		}
	}
	return nil
}

func applyHabitUpdate(habit *model.Habit, update HabitUpdate) error {
	if update.Name != nil {
		err := validation.ValidateHabitName(*update.Name)
		if err != nil {
			return err
		}
		habit.Name = *update.Name
	}
	if update.Description != nil {
		habit.Description = *update.Description
	}
	if update.Frequency != nil {
		err := validation.ValidateFrequency(*update.Frequency)
		if err != nil {
			return err
		}
		habit.Frequency = *update.Frequency
	}
	if update.TargetDays != nil {
		err := validation.ValidateTargetDays(update.TargetDays)
		if err != nil {
			return err
		}
		habit.TargetDays = update.TargetDays
	}
	if update.SelectedDays != nil {
		if len(*update.SelectedDays) == 0 && len(habit.SelectedDays) > 0 {
			return ErrSelectedDaysEmpty
		}
		err := validation.ValidateSelectedDays(*update.SelectedDays)
		if err != nil {
			return err
		}
		habit.SelectedDays = *update.SelectedDays
	}
	if update.AllDay != nil {
		habit.AllDay = *update.AllDay
	}
	for _, f := range []struct {
		field string
		src   *string
		dst   **string
	}{
		{"start_time", update.StartTime, &habit.StartTime},
		{"end_time", update.EndTime, &habit.EndTime},
		{"reminder_time", update.ReminderTime, &habit.ReminderTime},
	} {
		if f.src == nil {
			continue
		}
		err := validation.ValidateClockTime(f.field, *f.src)
		if err != nil {
			return err
		}
		*f.dst = f.src
	}
	if update.Icon != nil {
		habit.Icon = *update.Icon
	}
	if update.Category != nil {
		err := validation.ValidateCategory(*update.Category)
		if err != nil {
			return err
		}
		habit.Category = *update.Category
	}
	if update.NotificationEnabled != nil {
		habit.NotificationEnabled = *update.NotificationEnabled
	}
	return nil
}

// IsNotFound reports whether err is the repository's missing-habit
// signal, so handlers can translate it without leaking existence.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrHabitNotFound) ||
		errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrSettingsNotFound)
}
