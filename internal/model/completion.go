package model

import (
	"time"
)

// Completion records that a habit was done on a calendar day. The date
// is stored as "YYYY-MM-DD"; at most one completion exists per
// (habit_id, user_id, date).
type Completion struct {
	ID          string    `db:"id" json:"id"`
	HabitID     string    `db:"habit_id" json:"habit_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Date        string    `db:"date" json:"date"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}

// DateLayout is the calendar-day format used throughout.
const DateLayout = "2006-01-02"
