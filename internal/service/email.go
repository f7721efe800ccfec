package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appURL:    appURL,
		appName:   appName,
		isDev:     isDev,
	}
}

var frequencyLabels = map[string]string{
	"daily":   "Daily",
	"weekly":  "Weekly",
	"monthly": "Monthly",
	"once":    "One-time",
}

// SendHabitReminder tells a user they have not completed a habit.
func (s *EmailService) SendHabitReminder(email, habitName, frequency string) error {
	subject := fmt.Sprintf("Reminder: %s", habitName)

	label, ok := frequencyLabels[frequency]
	if !ok {
		label = frequency
	}

	body := fmt.Sprintf(
		"Hi,\n\nYou haven't completed your habit yet:\n\n%s\nFrequency: %s\n\nDon't forget to complete it today!\n\n%s/dashboard\n\n- %s",
		habitName, label, s.appURL, s.appName,
	)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "habit_reminder", "to", email, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "habit_reminder", "to", email)
	}
	return err
}
