package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/model"
	"github.com/habitflow/habitflow/internal/repository"
	"github.com/habitflow/habitflow/internal/validation"
)

type CompletionService struct {
	repo      repository.CompletionRepository
	habitRepo repository.HabitRepository
}

func NewCompletionService(repo repository.CompletionRepository, habitRepo repository.HabitRepository) *CompletionService {
	return &CompletionService{repo: repo, habitRepo: habitRepo}
}

// Create marks a habit done for a date (default: today). The ownership
// lookup rejects foreign habits up front; the storage constraint on
// (habit_id, user_id, date) is what makes duplicates impossible under
// concurrency.
func (s *CompletionService) Create(userID, habitID, date string) (*model.Completion, error) {
	// Verify ownership
	_, err := s.habitRepo.ByID(userID, habitID)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}
	err = validation.ValidateDate("date", date)
	if err != nil {
		return nil, err
	}

	completion := &model.Completion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		UserID:      userID,
		Date:        date,
		CompletedAt: time.Now(),
	}

	err = s.repo.Create(completion)
	if err != nil {
		return nil, err
	}

	return completion, nil
}

func (s *CompletionService) List(userID string, filter repository.CompletionFilter) ([]*model.Completion, error) {
	err := validation.ValidateDate("start_date", filter.StartDate)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateDate("end_date", filter.EndDate)
	if err != nil {
		return nil, err
	}

	completions, err := s.repo.List(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	return completions, nil
}

// Delete un-marks a completion. Returns false without error when
// nothing was removed.
func (s *CompletionService) Delete(userID, completionID string) (bool, error) {
	return s.repo.Delete(userID, completionID)
}
