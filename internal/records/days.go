// ABOUTME: Day-scoped record families: exercises and food log.
// ABOUTME: Load, full-replace save, per-day reset, and day enumeration.
package records

import (
	"fmt"

	"github.com/harperreed/fitdash/internal/models"
)

// Family names a day-scoped list of T stored under Prefix+date.
type Family[T any] struct {
	Prefix string
}

var (
	ExerciseFamily = Family[models.ExerciseEntry]{Prefix: PrefixExercises}
	FoodLogFamily  = Family[models.FoodLogEntry]{Prefix: PrefixFoodLog}
)

// Load returns the family's list for day, empty if absent or corrupt.
func Load[T any](b *Book, f Family[T], day string) []T {
	list := getJSON[[]T](b, KeyForDay(f.Prefix, day)).or(nil)
	if list == nil {
		return []T{}
	}
	return list
}

// Save replaces the family's list for day.
func Save[T any](b *Book, f Family[T], day string, list []T) error {
	if list == nil {
		list = []T{}
	}
	return setJSON(b, KeyForDay(f.Prefix, day), list)
}

// Remove deletes the family's record for day.
func Remove[T any](b *Book, f Family[T], day string) error {
	return b.delete(KeyForDay(f.Prefix, day))
}

// Days lists every date holding a record of the family, ascending.
func Days[T any](b *Book, f Family[T]) ([]string, error) {
	keys, err := b.store.Keys(f.Prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s days: %w", f.Prefix, err)
	}
	days := make([]string, 0, len(keys))
	for _, k := range keys {
		if d, ok := DayFromKey(f.Prefix, k); ok {
			days = append(days, d)
		}
	}
	return days, nil
}

// Exercises returns the day's exercise entries, newest first.
func (b *Book) Exercises(day string) []models.ExerciseEntry {
	return Load(b, ExerciseFamily, day)
}

// SaveExercises replaces the day's exercise entries.
func (b *Book) SaveExercises(day string, list []models.ExerciseEntry) error {
	return Save(b, ExerciseFamily, day, list)
}

// FoodLog returns the day's food log entries, newest first.
func (b *Book) FoodLog(day string) []models.FoodLogEntry {
	return Load(b, FoodLogFamily, day)
}

// SaveFoodLog replaces the day's food log.
func (b *Book) SaveFoodLog(day string, list []models.FoodLogEntry) error {
	return Save(b, FoodLogFamily, day, list)
}

// ExerciseDays lists every day with an exercise record. This is a
// full-history key scan.
func (b *Book) ExerciseDays() ([]string, error) {
	return Days(b, ExerciseFamily)
}

// DeleteDay removes the day's exercise and food log records.
// Targets and global state are kept.
func (b *Book) DeleteDay(day string) error {
	if err := Remove(b, ExerciseFamily, day); err != nil {
		return err
	}
	return Remove(b, FoodLogFamily, day)
}

// ExerciseTarget is the day's target entry count, 0 when unset.
func (b *Book) ExerciseTarget(day string) int {
	return int(b.getFloat(KeyForDay(PrefixExerciseTarget, day)).or(DefaultExerciseTarget))
}

// SetExerciseTarget stores the day's target entry count.
func (b *Book) SetExerciseTarget(day string, n int) error {
	return b.setFloat(KeyForDay(PrefixExerciseTarget, day), float64(n))
}

// CalorieTarget is the day's calorie target, 2400 when unset.
func (b *Book) CalorieTarget(day string) int {
	return int(b.getFloat(KeyForDay(PrefixCalorieTarget, day)).or(DefaultCalorieTarget))
}

// SetCalorieTarget stores the day's calorie target.
func (b *Book) SetCalorieTarget(day string, kcal int) error {
	return b.setFloat(KeyForDay(PrefixCalorieTarget, day), float64(kcal))
}
