// ABOUTME: Tests for user actions and their side effects.
// ABOUTME: A fixed clock pins "today" so rewards and streaks are predictable.
package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/fitdash/internal/models"
	"github.com/harperreed/fitdash/internal/records"
	"github.com/harperreed/fitdash/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2024-05-10"

func fp(v float64) *float64 { return &v }

func setup(t *testing.T) (*Tracker, *records.Book) {
	t.Helper()
	book := records.New(storage.NewMemory())
	now := func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.Local) }
	return New(book, WithClock(now)), book
}

func TestAddExercise(t *testing.T) {
	tr, book := setup(t)

	ex, err := tr.AddExercise(today, ExerciseDraft{Name: "  Running ", Minutes: fp(25), Weight: fp(10)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Running", ex.Name)
	assert.Nil(t, ex.Weight, "cardio entries drop weight")

	_, err = tr.AddExercise(today, ExerciseDraft{Name: "Bench Press", Weight: fp(50), Note: "  paused  "}, nil)
	require.NoError(t, err)

	list := book.Exercises(today)
	require.Len(t, list, 2)
	assert.Equal(t, "Bench Press", list[0].Name, "newest first")
	require.NotNil(t, list[0].Weight)
	assert.Equal(t, 50.0, *list[0].Weight)
	require.NotNil(t, list[0].Note)
	assert.Equal(t, "paused", *list[0].Note)

	assert.Equal(t, 40, book.XP())
	assert.Equal(t, 1, book.Streak())
	assert.Equal(t, today, book.LastActiveDay())
}

func TestAddExerciseFromPreset(t *testing.T) {
	tr, _ := setup(t)
	preset, ok := models.FindPreset("bench press")
	require.True(t, ok)

	ex, err := tr.AddExercise(today, ExerciseDraft{Reps: fp(12)}, &preset)
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", ex.Name)
	assert.Equal(t, 3.0, *ex.Sets)
	assert.Equal(t, 12.0, *ex.Reps, "draft overrides template")
	assert.Equal(t, 28.0, *ex.Weight)
	assert.Equal(t, "Free weights", *ex.Note)

	// Mutating the entry must not leak into the shared preset table.
	*ex.Sets = 99
	again, _ := models.FindPreset("Bench Press")
	assert.Equal(t, 3.0, *again.Template.Sets)
}

func TestAddExerciseRejectsInvalid(t *testing.T) {
	tr, book := setup(t)

	_, err := tr.AddExercise(today, ExerciseDraft{Name: "   "}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddExercise(today, ExerciseDraft{Name: "Squat", Sets: fp(-1)}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddExercise("10/05/2024", ExerciseDraft{Name: "Squat"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, book.Exercises(today))
	assert.Equal(t, 0, book.XP())
}

func TestEditExercise(t *testing.T) {
	tr, book := setup(t)
	ex, err := tr.AddExercise(today, ExerciseDraft{Name: "Squat", Sets: fp(3), Weight: fp(60), Note: "low bar"}, nil)
	require.NoError(t, err)

	got, err := tr.EditExercise(today, ex.ID, ExerciseDraft{Name: "", Reps: fp(5), Weight: fp(70)})
	require.NoError(t, err)
	assert.Equal(t, "Squat", got.Name, "blank name keeps old")
	assert.Nil(t, got.Sets)
	assert.Equal(t, 5.0, *got.Reps)
	assert.Equal(t, 70.0, *got.Weight)
	assert.Nil(t, got.Note)

	got, err = tr.EditExercise(today, ex.ID, ExerciseDraft{Name: "Running", Minutes: fp(30), Weight: fp(70)})
	require.NoError(t, err)
	assert.Nil(t, got.Weight, "weight dropped once no longer strength")
	assert.Equal(t, "Running", book.Exercises(today)[0].Name)

	_, err = tr.EditExercise(today, "missing", ExerciseDraft{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveExercise(t *testing.T) {
	tr, book := setup(t)
	a, _ := tr.AddExercise(today, ExerciseDraft{Name: "Plank"}, nil)
	b, _ := tr.AddExercise(today, ExerciseDraft{Name: "Lunges"}, nil)

	require.NoError(t, tr.RemoveExercise(today, a.ID))
	list := book.Exercises(today)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	assert.ErrorIs(t, tr.RemoveExercise(today, a.ID), ErrNotFound)
}

func TestTargets(t *testing.T) {
	tr, book := setup(t)
	require.NoError(t, tr.SetExerciseTarget(today, 5))
	require.NoError(t, tr.SetCalorieTarget(today, 2100))
	assert.Equal(t, 5, book.ExerciseTarget(today))
	assert.Equal(t, 2100, book.CalorieTarget(today))

	assert.ErrorIs(t, tr.SetExerciseTarget(today, -1), ErrInvalidInput)
	assert.ErrorIs(t, tr.SetCalorieTarget(today, -5), ErrInvalidInput)
}

func TestFoodLibrary(t *testing.T) {
	tr, book := setup(t)

	added, err := tr.AddFoodToLibrary(models.FoodItem{ID: "ignored", Name: " Tofu ", Calories: 144, Serving: "100 g"})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", added.ID)
	assert.Equal(t, "Tofu", added.Name)

	foods := book.Foods()
	require.Len(t, foods, 11)
	assert.Equal(t, added.ID, foods[0].ID)

	_, err = tr.AddFoodToLibrary(models.FoodItem{Name: "Water", Calories: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddFoodToLibrary(models.FoodItem{Name: "", Calories: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddFoodToLibrary(models.FoodItem{Name: "Bad", Calories: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, tr.SearchLibrary(""), 11)
	hits := tr.SearchLibrary("TOF")
	require.Len(t, hits, 1)
	assert.Equal(t, "Tofu", hits[0].Name)
	assert.Empty(t, tr.SearchLibrary("pizza"))

	found, err := tr.FindFood(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tofu", found.Name)
	_, err = tr.FindFood("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleFavouriteFood(t *testing.T) {
	tr, book := setup(t)
	id := book.Foods()[0].ID

	fav, err := tr.ToggleFavouriteFood(id)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.Len(t, tr.FavouriteFoods(), 1)

	fav, err = tr.ToggleFavouriteFood(id)
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Empty(t, book.FavFoodIDs())
}

func TestFoodLog(t *testing.T) {
	tr, book := setup(t)
	banana := models.FoodItem{ID: "b", Name: "Banana", Calories: 105}
	apple := models.FoodItem{ID: "a", Name: "Apple", Calories: 95}

	_, err := tr.LogFood(today, banana, 2)
	require.NoError(t, err)
	entry, err := tr.LogFood(today, apple, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, entry.LoggedAt.Hour())

	assert.Equal(t, 305.0, tr.Metrics().CaloriesIn(today))
	assert.Equal(t, 10, book.XP())

	_, err = tr.LogFood(today, apple, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, tr.EditFoodQty(today, 1, 0))
	assert.Equal(t, 95.0, tr.Metrics().CaloriesIn(today))
	assert.ErrorIs(t, tr.EditFoodQty(today, 1, -1), ErrInvalidInput)
	assert.ErrorIs(t, tr.EditFoodQty(today, 5, 1), ErrNotFound)

	require.NoError(t, tr.RemoveFoodLog(today, 0))
	log := book.FoodLog(today)
	require.Len(t, log, 1)
	assert.Equal(t, "Banana", log[0].Name)
	assert.ErrorIs(t, tr.RemoveFoodLog(today, 3), ErrNotFound)
}

func TestMeals(t *testing.T) {
	tr, book := setup(t)

	_, err := tr.SaveDayAsMeal(today, "Breakfast")
	assert.ErrorIs(t, err, ErrInvalidInput, "empty log")

	_, err = tr.LogFood(today, models.FoodItem{ID: "o", Name: "Oats", Calories: 150}, 1)
	require.NoError(t, err)
	_, err = tr.LogFood(today, models.FoodItem{ID: "m", Name: "Milk", Calories: 60}, 2)
	require.NoError(t, err)

	_, err = tr.SaveDayAsMeal(today, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	meal, err := tr.SaveDayAsMeal(today, "Breakfast")
	require.NoError(t, err)
	require.Len(t, meal.Items, 2)

	tomorrow := "2024-05-11"
	entries, err := tr.ApplyMeal(tomorrow, meal.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, 270.0, tr.Metrics().CaloriesIn(tomorrow))
	assert.Equal(t, 15, book.XP())

	_, err = tr.ApplyMeal(tomorrow, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, tr.DeleteMeal(meal.ID))
	assert.Empty(t, book.FavMeals())
	assert.ErrorIs(t, tr.DeleteMeal(meal.ID), ErrNotFound)
}

func TestSetSleep(t *testing.T) {
	tr, book := setup(t)

	require.NoError(t, tr.SetSleep("2024-05-09", 9))
	assert.Equal(t, 0, book.XP(), "past nights earn nothing")

	require.NoError(t, tr.SetSleep(today, 7.5))
	assert.Equal(t, 0, book.XP(), "below goal")

	require.NoError(t, tr.SetSleep(today, 8))
	assert.Equal(t, 30, book.XP())
	assert.Equal(t, 1, book.Streak())
	assert.Equal(t, 8.0, tr.Metrics().SleepHours(today))

	assert.ErrorIs(t, tr.SetSleep(today, -1), ErrInvalidInput)
	assert.ErrorIs(t, tr.SetSleep(today, math.Inf(1)), ErrInvalidInput)
}

func TestSleepGoalOption(t *testing.T) {
	book := records.New(storage.NewMemory())
	now := func() time.Time { return time.Date(2024, 5, 10, 7, 0, 0, 0, time.Local) }
	tr := New(book, WithClock(now), WithSleepGoal(6))

	require.NoError(t, tr.SetSleep(today, 6))
	assert.Equal(t, 30, book.XP())
}

func TestSetSleepQuality(t *testing.T) {
	tr, book := setup(t)
	require.NoError(t, tr.SetSleepQuality(today, "good"))
	assert.Equal(t, "good", book.SleepQualityMap()[today])
	assert.ErrorIs(t, tr.SetSleepQuality(today, "great"), ErrInvalidInput)
}

func TestSetBodyWeight(t *testing.T) {
	tr, book := setup(t)
	require.NoError(t, tr.SetBodyWeight(today, 81.2))
	assert.Equal(t, 81.2, book.BodyWeightMap()[today])

	require.NoError(t, tr.SetBodyWeight(today, 0))
	_, ok := book.BodyWeightMap()[today]
	assert.False(t, ok)

	assert.ErrorIs(t, tr.SetBodyWeight(today, -80), ErrInvalidInput)
}

func TestResetDay(t *testing.T) {
	tr, book := setup(t)
	_, err := tr.AddExercise(today, ExerciseDraft{Name: "Running", Minutes: fp(30)}, nil)
	require.NoError(t, err)
	_, err = tr.LogFood(today, models.FoodItem{Name: "Apple", Calories: 95}, 1)
	require.NoError(t, err)
	require.NoError(t, tr.SetCalorieTarget(today, 1800))

	require.NoError(t, tr.ResetDay(today))
	assert.Empty(t, book.Exercises(today))
	assert.Empty(t, book.FoodLog(today))
	assert.Equal(t, 1800, book.CalorieTarget(today))
	assert.Equal(t, 25, book.XP())
}

func TestSettings(t *testing.T) {
	tr, book := setup(t)

	require.NoError(t, tr.SetBurnRate(8))
	assert.Equal(t, 8.0, book.BurnRate())
	assert.ErrorIs(t, tr.SetBurnRate(-1), ErrInvalidInput)

	require.NoError(t, tr.SetTheme("light"))
	assert.Equal(t, models.ThemeLight, book.Theme())
	assert.ErrorIs(t, tr.SetTheme("solarized"), ErrInvalidInput)

	require.NoError(t, tr.SetAccent("rose"))
	assert.Equal(t, models.AccentRose, book.Accent())
	assert.ErrorIs(t, tr.SetAccent("teal"), ErrInvalidInput)
}
