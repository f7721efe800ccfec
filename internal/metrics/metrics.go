// Package metrics computes aggregate habit statistics. It operates on
// already-fetched collections and performs no I/O, which keeps the
// calculations trivially testable.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/habitflow/habitflow/internal/model"
)

// completionWindowDays is the trailing window used for the completion rate.
const completionWindowDays = 30

type HabitStreak struct {
	HabitID string `json:"habit_id"`
	Streak  int    `json:"streak"`
}

type Metrics struct {
	TotalHabits       int            `json:"total_habits"`
	CompletedToday    int            `json:"completed_today"`
	CompletionRate    float64        `json:"completion_rate"`
	CurrentStreak     int            `json:"current_streak"`
	LongestStreak     int            `json:"longest_streak"`
	HabitsByFrequency map[string]int `json:"habits_by_frequency"`
	HabitStreaks      []HabitStreak  `json:"habit_streaks"`
}

// Compute derives all dashboard metrics for one user. today is the
// caller's current calendar day in "YYYY-MM-DD" form; every date
// comparison is done against that string or a backward walk from it.
//
// The completion rate only considers daily habits: weekly and monthly
// habits contribute to neither the numerator nor the denominator.
// Likewise the streak walk matches literal consecutive calendar days,
// not a habit's own schedule. Both are deliberate policy choices
// carried over from the product, not oversights.
func Compute(habits []*model.Habit, completions []*model.Completion, today string) (*Metrics, error) {
	todayDate, err := time.Parse(model.DateLayout, today)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		TotalHabits:       len(habits),
		HabitsByFrequency: map[string]int{},
	}
	for _, f := range model.Frequencies {
		m.HabitsByFrequency[f] = 0
	}

	for _, c := range completions {
		if c.Date == today {
			m.CompletedToday++
		}
	}

	dailyIDs := map[string]bool{}
	for _, h := range habits {
		m.HabitsByFrequency[h.Frequency]++
		if h.Frequency == model.FrequencyDaily {
			dailyIDs[h.ID] = true
		}
	}

	m.CompletionRate = completionRate(dailyIDs, completions, todayDate)

	byHabit := map[string][]string{}
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Date)
	}

	m.HabitStreaks = make([]HabitStreak, 0, len(habits))
	for _, h := range habits {
		streak := streakFor(byHabit[h.ID], todayDate)
		m.HabitStreaks = append(m.HabitStreaks, HabitStreak{HabitID: h.ID, Streak: streak})
		if streak > m.CurrentStreak {
			m.CurrentStreak = streak
		}
	}

	// No separate historical maximum is tracked.
	m.LongestStreak = m.CurrentStreak

	return m, nil
}

// completionRate is the percentage of daily-habit completions that
// landed within the trailing 30-day window, rounded to two decimals.
func completionRate(dailyIDs map[string]bool, completions []*model.Completion, today time.Time) float64 {
	expected := len(dailyIDs) * completionWindowDays
	if expected == 0 {
		return 0
	}

	window := map[string]bool{}
	for i := 0; i < completionWindowDays; i++ {
		window[today.AddDate(0, 0, -i).Format(model.DateLayout)] = true
	}

	actual := 0
	for _, c := range completions {
		if window[c.Date] && dailyIDs[c.HabitID] {
			actual++
		}
	}

	rate := float64(actual) / float64(expected) * 100
	return math.Round(rate*100) / 100
}

// streakFor counts consecutive completed days walking backward from
// today. A missing completion for today means the streak is zero no
// matter what came before.
func streakFor(dates []string, today time.Time) int {
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 0
	for i, date := range sorted {
		expected := today.AddDate(0, 0, -i).Format(model.DateLayout)
		if date != expected {
			break
		}
		streak++
	}
	return streak
}
