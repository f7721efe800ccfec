package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitflow/habitflow/internal/model"
)

var ErrHabitNotFound = errors.New("habit not found")

// HabitRepository scopes every operation by owner. A habit belonging
// to another user is indistinguishable from one that does not exist.
type HabitRepository interface {
	Create(habit *model.Habit) error
	ByID(userID, habitID string) (*model.Habit, error)
	Habits(userID string) ([]*model.Habit, error)
	Update(habit *model.Habit) error
	Delete(userID, habitID string) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *model.Habit) error {
	query := `INSERT INTO habits (id, user_id, name, description, frequency, target_days, selected_days,
	              all_day, start_time, end_time, icon, category, notification_enabled, reminder_time,
	              created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(query,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.TargetDays,
		habit.SelectedDays,
		habit.AllDay,
		habit.StartTime,
		habit.EndTime,
		habit.Icon,
		habit.Category,
		habit.NotificationEnabled,
		habit.ReminderTime,
		habit.CreatedAt,
		habit.UpdatedAt,
	)

	return err
}

func (r *habitRepository) ByID(userID, habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	query := `SELECT * FROM habits WHERE id = $1 AND user_id = $2`

	err := r.db.Get(habit, query, habitID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}

	return habit, err
}

func (r *habitRepository) Habits(userID string) ([]*model.Habit, error) {
	var habits []*model.Habit
	query := `SELECT * FROM habits WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&habits, query, userID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) Update(habit *model.Habit) error {
	query := `UPDATE habits
	          SET name = $1, description = $2, frequency = $3, target_days = $4, selected_days = $5,
	              all_day = $6, start_time = $7, end_time = $8, icon = $9, category = $10,
	              notification_enabled = $11, reminder_time = $12, updated_at = $13
	          WHERE id = $14 AND user_id = $15`

	result, err := r.db.Exec(query,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.TargetDays,
		habit.SelectedDays,
		habit.AllDay,
		habit.StartTime,
		habit.EndTime,
		habit.Icon,
		habit.Category,
		habit.NotificationEnabled,
		habit.ReminderTime,
		time.Now(),
		habit.ID,
		habit.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(userID, habitID string) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, habitID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}
