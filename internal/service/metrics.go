package service

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/metrics"
	"github.com/habitflow/habitflow/internal/repository"
)

// MetricsService fetches a user's collections and hands them to the
// pure engine in the metrics package.
type MetricsService struct {
	habitRepo      repository.HabitRepository
	completionRepo repository.CompletionRepository
}

func NewMetricsService(habitRepo repository.HabitRepository, completionRepo repository.CompletionRepository) *MetricsService {
	return &MetricsService{habitRepo: habitRepo, completionRepo: completionRepo}
}

func (s *MetricsService) Compute(userID, today string) (*metrics.Metrics, error) {
	habits, err := s.habitRepo.Habits(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	completions, err := s.completionRepo.List(userID, repository.CompletionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	return metrics.Compute(habits, completions, today)
}
