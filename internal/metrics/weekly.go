// ABOUTME: Rolling 7-day averages, weekly deltas and the trends bundle.
// ABOUTME: The divisor is always 7; missing days count as zero.
package metrics

import (
	"github.com/harperreed/fitdash/internal/dates"
)

// WeekDays is the rolling window length.
const WeekDays = 7

// WeekAverage is the mean of m over the 7 days ending at end inclusive.
func (e *Engine) WeekAverage(m Metric, end string) (float64, error) {
	// Calories out is derived from the weekly minutes so the burn rate
	// is applied once.
	if m == CaloriesOut {
		mins, err := e.WeekAverage(ExerciseMinutes, end)
		if err != nil {
			return 0, err
		}
		return mins * e.burnRate(), nil
	}

	window, err := dates.Window(end, WeekDays)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, d := range window {
		v, err := e.Value(m, d)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / WeekDays, nil
}

// WeekDelta is this week's average minus the 7 days before it.
func (e *Engine) WeekDelta(m Metric, end string) (float64, error) {
	this, err := e.WeekAverage(m, end)
	if err != nil {
		return 0, err
	}
	prevEnd, err := dates.Add(end, -WeekDays)
	if err != nil {
		return 0, err
	}
	prev, err := e.WeekAverage(m, prevEnd)
	if err != nil {
		return 0, err
	}
	return this - prev, nil
}

// Trend is one dashboard card.
type Trend struct {
	Metric    Metric  `json:"metric"`
	Label     string  `json:"label"`
	Unit      string  `json:"unit,omitempty"`
	Today     float64 `json:"today"`
	DayDelta  float64 `json:"day_delta"`
	WeekAvg   float64 `json:"week_avg"`
	WeekDelta float64 `json:"week_delta"`
}

// DayDirection classifies the daily delta.
func (t Trend) DayDirection() Direction { return Classify(t.DayDelta) }

// WeekDirection classifies the weekly delta.
func (t Trend) WeekDirection() Direction { return Classify(t.WeekDelta) }

// Trends computes every metric's card for day.
func (e *Engine) Trends(day string) ([]Trend, error) {
	out := make([]Trend, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		today, err := e.Value(m, day)
		if err != nil {
			return nil, err
		}
		dd, err := e.DayDelta(m, day)
		if err != nil {
			return nil, err
		}
		avg, err := e.WeekAverage(m, day)
		if err != nil {
			return nil, err
		}
		wd, err := e.WeekDelta(m, day)
		if err != nil {
			return nil, err
		}
		out = append(out, Trend{
			Metric:    m,
			Label:     m.Label(),
			Unit:      m.Unit(),
			Today:     today,
			DayDelta:  dd,
			WeekAvg:   avg,
			WeekDelta: wd,
		})
	}
	return out, nil
}
