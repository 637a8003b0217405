// ABOUTME: Sign-based classification and rendering of deltas.
// ABOUTME: Direction ignores whether higher is better for the metric.
package metrics

import (
	"fmt"
	"math"
)

// Direction classifies a delta by sign only.
type Direction string

const (
	Improving Direction = "improving"
	Declining Direction = "declining"
	Neutral   Direction = "neutral"
)

// Classify maps positive to improving, negative to declining and zero to neutral.
func Classify(delta float64) Direction {
	switch {
	case delta > 0:
		return Improving
	case delta < 0:
		return Declining
	}
	return Neutral
}

// FormatDelta renders a signed magnitude: whole units when unit is set,
// two decimals otherwise. Negative values use an en dash.
func FormatDelta(delta float64, unit string) string {
	sign := ""
	switch {
	case delta > 0:
		sign = "+"
	case delta < 0:
		sign = "–"
	}
	mag := math.Abs(delta)
	if unit != "" {
		return fmt.Sprintf("%s%.0f %s", sign, mag, unit)
	}
	return fmt.Sprintf("%s%.2f", sign, mag)
}
