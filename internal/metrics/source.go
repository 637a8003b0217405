// ABOUTME: Read-only view of the record store used by the metrics engine.
// ABOUTME: records.Book satisfies it; tests can supply fakes.
package metrics

import "github.com/harperreed/fitdash/internal/models"

// Source is the snapshot the engine reads from on every call.
type Source interface {
	Exercises(day string) []models.ExerciseEntry
	FoodLog(day string) []models.FoodLogEntry
	SleepMap() map[string]float64
	BodyWeightMap() map[string]float64
	BurnRate() float64
	ExerciseDays() ([]string, error)
	ExerciseTarget(day string) int
	CalorieTarget(day string) int
}

// Engine derives metrics from a Source. It holds no state of its own:
// every call re-reads and recomputes.
type Engine struct {
	src Source
}

// New creates an engine over src.
func New(src Source) *Engine {
	return &Engine{src: src}
}
