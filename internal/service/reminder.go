package service

import (
	"log/slog"
	"time"

	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/repository"
)

// ReminderDispatcher sends a single habit reminder. EmailService is
// the production implementation.
type ReminderDispatcher interface {
	SendHabitReminder(email, habitName, frequency string) error
}

// ReminderReport summarizes one sweep.
type ReminderReport struct {
	EmailsSent int    `json:"emails_sent"`
	Errors     int    `json:"errors"`
	Date       string `json:"date"`
}

// ReminderService implements the daily reminder sweep: every user with
// email notifications enabled gets one email per daily habit not
// completed yesterday. Weekly and monthly habits are not evaluated.
type ReminderService struct {
	settingsRepo   repository.SettingsRepository
	userRepo       repository.UserRepository
	habitRepo      repository.HabitRepository
	completionRepo repository.CompletionRepository
	dispatcher     ReminderDispatcher
}

func NewReminderService(
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
	habitRepo repository.HabitRepository,
	completionRepo repository.CompletionRepository,
	dispatcher ReminderDispatcher,
) *ReminderService {
	return &ReminderService{
		settingsRepo:   settingsRepo,
		userRepo:       userRepo,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		dispatcher:     dispatcher,
	}
}

// Run performs one sweep for the day before now. Failures are isolated
// per user and per habit; one bad address never aborts the batch.
func (s *ReminderService) Run(now time.Time) (*ReminderReport, error) {
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)
	report := &ReminderReport{Date: yesterday}

	userIDs, err := s.settingsRepo.NotificationEnabledUserIDs()
	if err != nil {
		return nil, err
	}

	for _, userID := range userIDs {
		err := s.remindUser(userID, yesterday, report)
		if err != nil {
			slog.Error("reminder sweep failed for user", "error", err, "user_id", userID)
			report.Errors++
		}
	}

	slog.Info("reminder sweep completed",
		"date", yesterday,
		"users", len(userIDs),
		"emails_sent", report.EmailsSent,
		"errors", report.Errors,
	)

	return report, nil
}

func (s *ReminderService) remindUser(userID, yesterday string, report *ReminderReport) error {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return err
	}

	habits, err := s.habitRepo.Habits(userID)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		return nil
	}

	completions, err := s.completionRepo.List(userID, repository.CompletionFilter{
		StartDate: yesterday,
		EndDate:   yesterday,
	})
	if err != nil {
		return err
	}

	completed := map[string]bool{}
	for _, c := range completions {
		completed[c.HabitID] = true
	}

	for _, habit := range habits {
		if habit.Frequency != model.FrequencyDaily || completed[habit.ID] {
			continue
		}

		err := s.dispatcher.SendHabitReminder(user.Email, habit.Name, habit.Frequency)
		if err != nil {
			slog.Error("failed to send reminder", "error", err, "user_id", userID, "habit_id", habit.ID)
			report.Errors++
			continue
		}
		report.EmailsSent++
	}

	return nil
}
