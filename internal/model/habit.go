package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyOnce    = "once"
)

const (
	CategoryPersonalDevelopment = "personal_development"
	CategorySport               = "sport"
	CategoryHealth              = "health"
)

var Frequencies = []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyOnce}

var Categories = []string{CategoryPersonalDevelopment, CategorySport, CategoryHealth}

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayList is a set of weekday names stored as comma-separated text.
type DayList []string

func (d DayList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "", nil
	}
	return strings.Join(d, ","), nil
}

func (d *DayList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case string:
		if v == "" {
			*d = nil
			return nil
		}
		*d = strings.Split(v, ",")
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into DayList", src)
	}
	return nil
}

func (d DayList) Contains(day string) bool {
	for _, v := range d {
		if v == day {
			return true
		}
	}
	return false
}

type Habit struct {
	ID                  string    `db:"id" json:"id"`
	UserID              string    `db:"user_id" json:"user_id"`
	Name                string    `db:"name" json:"name"`
	Description         string    `db:"description" json:"description,omitempty"`
	Frequency           string    `db:"frequency" json:"frequency"`
	TargetDays          *int      `db:"target_days" json:"target_days,omitempty"`
	SelectedDays        DayList   `db:"selected_days" json:"selected_days,omitempty"`
	AllDay              bool      `db:"all_day" json:"all_day"`
	StartTime           *string   `db:"start_time" json:"start_time,omitempty"`
	EndTime             *string   `db:"end_time" json:"end_time,omitempty"`
	Icon                string    `db:"icon" json:"icon,omitempty"`
	Category            string    `db:"category" json:"category,omitempty"`
	NotificationEnabled bool      `db:"notification_enabled" json:"notification_enabled"`
	ReminderTime        *string   `db:"reminder_time" json:"reminder_time,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// ActiveOn reports whether the habit applies to the given date.
// Monthly and one-off habits ignore selected days entirely; an empty
// day set means the habit is active every day.
func (h *Habit) ActiveOn(date time.Time) bool {
	if h.Frequency == FrequencyMonthly || h.Frequency == FrequencyOnce {
		return true
	}
	if len(h.SelectedDays) == 0 {
		return true
	}
	return h.SelectedDays.Contains(strings.ToLower(date.Weekday().String()))
}
