package validation

import (
	"fmt"
	"time"
	"unicode/utf8"
)

var validFrequencies = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"once":    true,
}

var validCategories = map[string]bool{
	"personal_development": true,
	"sport":                true,
	"health":               true,
}

var validWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// FieldError reports which field failed so handlers can return
// field-level detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateHabitName(name string) error {
	if name == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) > 255 {
		return &FieldError{Field: "name", Message: "name is too long (max 255 characters)"}
	}
	return nil
}

func ValidateFrequency(frequency string) error {
	if !validFrequencies[frequency] {
		return &FieldError{Field: "frequency", Message: "frequency must be one of daily, weekly, monthly, once"}
	}
	return nil
}

func ValidateCategory(category string) error {
	if category == "" {
		return nil
	}
	if !validCategories[category] {
		return &FieldError{Field: "category", Message: "category must be one of personal_development, sport, health"}
	}
	return nil
}

func ValidateTargetDays(targetDays *int) error {
	if targetDays == nil {
		return nil
	}
	if *targetDays <= 0 {
		return &FieldError{Field: "target_days", Message: "target_days must be a positive integer"}
	}
	return nil
}

func ValidateSelectedDays(days []string) error {
	for _, day := range days {
		if !validWeekdays[day] {
			return &FieldError{Field: "selected_days", Message: fmt.Sprintf("unknown weekday %q", day)}
		}
	}
	return nil
}

// ValidateClockTime checks "HH:MM" values (start_time, end_time,
// reminder_time, notification_time).
func ValidateClockTime(field, value string) error {
	if value == "" {
		return nil
	}
	_, err := time.Parse("15:04", value)
	if err != nil {
		return &FieldError{Field: field, Message: "must be in HH:MM format"}
	}
	return nil
}

// ValidateDate checks "YYYY-MM-DD" values.
func ValidateDate(field, value string) error {
	if value == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return &FieldError{Field: field, Message: "must be in YYYY-MM-DD format"}
	}
	return nil
}
