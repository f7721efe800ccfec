package repository

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/habitflow/habitflow/internal/model"
)

var ErrAlreadyCompleted = errors.New("habit already completed for this date")

// CompletionFilter narrows List. Zero values mean "no filter"; the
// date range is inclusive on both ends.
type CompletionFilter struct {
	HabitID   string
	StartDate string
	EndDate   string
}

type CompletionRepository interface {
	Create(completion *model.Completion) error
	List(userID string, filter CompletionFilter) ([]*model.Completion, error)
	Delete(userID, completionID string) (bool, error)
}

type completionRepository struct {
	db *sqlx.DB
}

func NewCompletionRepository(db *sqlx.DB) CompletionRepository {
	return &completionRepository{db: db}
}

// Create inserts a completion row. The unique index on
// (habit_id, user_id, date) is the authority on duplicates: a losing
// concurrent writer gets ErrAlreadyCompleted from the constraint, not
// from any application-level existence check.
func (r *completionRepository) Create(completion *model.Completion) error {
	query := `INSERT INTO habit_completions (id, habit_id, user_id, date, completed_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		completion.ID,
		completion.HabitID,
		completion.UserID,
		completion.Date,
		completion.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyCompleted
		}
		return err
	}

	return nil
}

func (r *completionRepository) List(userID string, filter CompletionFilter) ([]*model.Completion, error) {
	query := `SELECT * FROM habit_completions WHERE user_id = $1`
	args := []any{userID}

	if filter.HabitID != "" {
		args = append(args, filter.HabitID)
		query += fmt.Sprintf(` AND habit_id = $%d`, len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	query += ` ORDER BY date DESC`

	var completions []*model.Completion
	err := r.db.Select(&completions, query, args...)
	if err != nil {
		return nil, err
	}

	return completions, nil
}

// Delete reports whether a row was removed. A missing id is not an
// error; un-marking twice is a no-op.
func (r *completionRepository) Delete(userID, completionID string) (bool, error) {
	query := `DELETE FROM habit_completions WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, completionID, userID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
