// ABOUTME: Per-day scalar metrics and day-over-day deltas.
// ABOUTME: Missing records count as zero.
package metrics

import (
	"fmt"
	"math"

	"github.com/harperreed/fitdash/internal/dates"
)

// Metric names a per-day scalar.
type Metric string

const (
	CaloriesIn      Metric = "calories_in"
	CaloriesOut     Metric = "calories_out"
	ExerciseMinutes Metric = "exercise_minutes"
	SleepHours      Metric = "sleep_hours"
)

// AllMetrics lists metrics in dashboard order.
var AllMetrics = []Metric{CaloriesIn, CaloriesOut, ExerciseMinutes, SleepHours}

// Unit is the display unit for daily values, empty for sleep.
func (m Metric) Unit() string {
	switch m {
	case CaloriesIn, CaloriesOut:
		return "kcal"
	case ExerciseMinutes:
		return "min"
	}
	return ""
}

// Label is the human-readable metric name.
func (m Metric) Label() string {
	switch m {
	case CaloriesIn:
		return "Calories In"
	case CaloriesOut:
		return "Calories Out (Est.)"
	case ExerciseMinutes:
		return "Exercise Minutes"
	case SleepHours:
		return "Sleep"
	}
	return string(m)
}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// CaloriesIn sums calories × qty over the day's food log.
func (e *Engine) CaloriesIn(day string) float64 {
	total := 0.0
	for _, f := range e.src.FoodLog(day) {
		total += finite(f.Calories) * finite(f.Qty)
	}
	return total
}

// ExerciseMinutes sums minutes over the day's exercises.
func (e *Engine) ExerciseMinutes(day string) float64 {
	total := 0.0
	for _, x := range e.src.Exercises(day) {
		total += finite(x.MinutesOrZero())
	}
	return total
}

// SleepHours looks the day up in the sleep map.
func (e *Engine) SleepHours(day string) float64 {
	return finite(e.src.SleepMap()[day])
}

// CaloriesOut estimates burned calories as exercise minutes × burn rate.
func (e *Engine) CaloriesOut(day string) float64 {
	return e.ExerciseMinutes(day) * e.burnRate()
}

// Value evaluates metric for day.
func (e *Engine) Value(m Metric, day string) (float64, error) {
	if _, err := dates.Parse(day); err != nil {
		return 0, err
	}
	switch m {
	case CaloriesIn:
		return e.CaloriesIn(day), nil
	case CaloriesOut:
		return e.CaloriesOut(day), nil
	case ExerciseMinutes:
		return e.ExerciseMinutes(day), nil
	case SleepHours:
		return e.SleepHours(day), nil
	}
	return 0, fmt.Errorf("unknown metric %q", m)
}

// DayDelta is m(day) − m(day − 1).
func (e *Engine) DayDelta(m Metric, day string) (float64, error) {
	today, err := e.Value(m, day)
	if err != nil {
		return 0, err
	}
	prev, err := dates.Add(day, -1)
	if err != nil {
		return 0, err
	}
	yesterday, err := e.Value(m, prev)
	if err != nil {
		return 0, err
	}
	return today - yesterday, nil
}

// burnRate treats negative or non-finite rates as zero.
func (e *Engine) burnRate() float64 {
	r := finite(e.src.BurnRate())
	if r < 0 {
		return 0
	}
	return r
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
