// ABOUTME: Day summary and the 7-day sleep window.
// ABOUTME: Remaining amounts are floored at zero.
package metrics

import (
	"github.com/harperreed/fitdash/internal/dates"
)

// SleepDay is one bar of the sleep window.
type SleepDay struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// SleepWeek is the last 7 days of sleep ending at a date.
type SleepWeek struct {
	Days    []SleepDay `json:"days"`
	Average float64    `json:"average"`
}

// SleepWindow returns the 7 days ending at day with their mean.
func (e *Engine) SleepWindow(day string) (*SleepWeek, error) {
	window, err := dates.Window(day, WeekDays)
	if err != nil {
		return nil, err
	}
	m := e.src.SleepMap()
	w := &SleepWeek{Days: make([]SleepDay, 0, len(window))}
	sum := 0.0
	for _, d := range window {
		h := finite(m[d])
		w.Days = append(w.Days, SleepDay{Date: d, Hours: h})
		sum += h
	}
	w.Average = sum / float64(len(window))
	return w, nil
}

// Summary is the day's progress against its targets.
type Summary struct {
	Date              string  `json:"date"`
	ExercisesDone     int     `json:"exercises_done"`
	ExerciseTarget    int     `json:"exercise_target"`
	ExercisesLeft     int     `json:"exercises_left"`
	ExerciseMinutes   float64 `json:"exercise_minutes"`
	CaloriesIn        float64 `json:"calories_in"`
	CalorieTarget     int     `json:"calorie_target"`
	CaloriesRemaining float64 `json:"calories_remaining"`
	SleepHours        float64 `json:"sleep_hours"`
}

// DaySummary reports done vs target for exercises and calories.
func (e *Engine) DaySummary(day string) (*Summary, error) {
	if _, err := dates.Parse(day); err != nil {
		return nil, err
	}
	s := &Summary{
		Date:            day,
		ExercisesDone:   len(e.src.Exercises(day)),
		ExerciseTarget:  e.src.ExerciseTarget(day),
		ExerciseMinutes: e.ExerciseMinutes(day),
		CaloriesIn:      e.CaloriesIn(day),
		CalorieTarget:   e.src.CalorieTarget(day),
		SleepHours:      e.SleepHours(day),
	}
	if left := s.ExerciseTarget - s.ExercisesDone; left > 0 {
		s.ExercisesLeft = left
	}
	if rem := float64(s.CalorieTarget) - s.CaloriesIn; rem > 0 {
		s.CaloriesRemaining = rem
	}
	return s, nil
}
