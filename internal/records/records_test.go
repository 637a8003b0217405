// ABOUTME: Tests for the day-keyed record store.
// ABOUTME: Covers defaults, corrupt values, day reset and export/import.
package records

import (
	"testing"

	"github.com/harperreed/fitdash/internal/models"
	"github.com/harperreed/fitdash/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T) (*Book, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return New(mem), mem
}

func TestNewWritesSchemaVersion(t *testing.T) {
	_, mem := newBook(t)
	v, err := mem.Get(KeySchemaVersion)
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))
}

func TestDefaults(t *testing.T) {
	b, _ := newBook(t)
	day := "2024-01-01"

	assert.Empty(t, b.Exercises(day))
	assert.NotNil(t, b.Exercises(day))
	assert.Empty(t, b.FoodLog(day))
	assert.Equal(t, 0, b.ExerciseTarget(day))
	assert.Equal(t, 2400, b.CalorieTarget(day))
	assert.Equal(t, 6.0, b.BurnRate())
	assert.Equal(t, models.ThemeDark, b.Theme())
	assert.Equal(t, models.AccentEmerald, b.Accent())
	assert.Equal(t, 0, b.XP())
	assert.Equal(t, 0, b.Streak())
	assert.Equal(t, "", b.LastActiveDay())
	assert.Len(t, b.Foods(), 10)
	assert.Empty(t, b.FavFoodIDs())
	assert.Empty(t, b.FavMeals())
	assert.Empty(t, b.SleepMap())
	assert.Empty(t, b.BodyWeightMap())
	assert.Empty(t, b.SleepQualityMap())
}

func TestCorruptValuesReadAsAbsent(t *testing.T) {
	b, mem := newBook(t)
	day := "2024-02-03"

	require.NoError(t, mem.Set(KeyForDay(PrefixExercises, day), []byte("{not json")))
	require.NoError(t, mem.Set(KeyForDay(PrefixCalorieTarget, day), []byte("lots")))
	require.NoError(t, mem.Set(KeySleepMap, []byte("[1,2,3]")))
	require.NoError(t, mem.Set(KeyBurnRate, []byte("")))
	require.NoError(t, mem.Set(KeyTheme, []byte("neon")))
	require.NoError(t, mem.Set(KeyFoods, []byte("nope")))

	assert.Empty(t, b.Exercises(day))
	assert.Equal(t, 2400, b.CalorieTarget(day))
	assert.Empty(t, b.SleepMap())
	assert.Equal(t, 6.0, b.BurnRate())
	assert.Equal(t, models.ThemeDark, b.Theme())
	assert.Len(t, b.Foods(), 10)
}

func TestScalarsStoredAsText(t *testing.T) {
	b, mem := newBook(t)

	require.NoError(t, b.SetXP(45))
	require.NoError(t, b.SetStreak(3))
	require.NoError(t, b.SetBurnRate(7.5))
	require.NoError(t, b.SetLastActiveDay("2024-03-01"))
	require.NoError(t, b.SetCalorieTarget("2024-03-01", 2100))

	raw := func(k string) string {
		v, err := mem.Get(k)
		require.NoError(t, err)
		return string(v)
	}
	assert.Equal(t, "45", raw(KeyXP))
	assert.Equal(t, "3", raw(KeyStreak))
	assert.Equal(t, "7.5", raw(KeyBurnRate))
	assert.Equal(t, "2024-03-01", raw(KeyLastActiveDay))
	assert.Equal(t, "2100", raw("calorie_target_2024-03-01"))

	assert.Equal(t, 45, b.XP())
	assert.Equal(t, 3, b.Streak())
	assert.Equal(t, 7.5, b.BurnRate())
	assert.Equal(t, 2100, b.CalorieTarget("2024-03-01"))
}

func TestSaveAndLoadDayFamilies(t *testing.T) {
	b, _ := newBook(t)
	day := "2024-01-05"

	ex := []models.ExerciseEntry{
		*models.NewExerciseEntry("Bench Press").WithSets(3).WithReps(8).WithWeight(60),
		*models.NewExerciseEntry("Running").WithMinutes(30),
	}
	require.NoError(t, b.SaveExercises(day, ex))

	got := b.Exercises(day)
	require.Len(t, got, 2)
	assert.Equal(t, "Bench Press", got[0].Name)
	require.NotNil(t, got[0].Weight)
	assert.Equal(t, 60.0, *got[0].Weight)
	assert.Nil(t, got[1].Weight)

	food := models.DefaultFoods()[0]
	log := []models.FoodLogEntry{*models.NewFoodLogEntry(food, 2)}
	require.NoError(t, b.SaveFoodLog(day, log))
	assert.Equal(t, 2.0, b.FoodLog(day)[0].Qty)
}

func TestDeleteDayKeepsTargetsAndGlobals(t *testing.T) {
	b, mem := newBook(t)
	day := "2024-01-06"

	require.NoError(t, b.SaveExercises(day, []models.ExerciseEntry{*models.NewExerciseEntry("Squat")}))
	require.NoError(t, b.SaveFoodLog(day, []models.FoodLogEntry{*models.NewFoodLogEntry(models.DefaultFoods()[1], 1)}))
	require.NoError(t, b.SetExerciseTarget(day, 4))
	require.NoError(t, b.SetCalorieTarget(day, 2000))
	require.NoError(t, b.SaveSleepMap(map[string]float64{day: 7}))
	require.NoError(t, b.SetXP(25))

	require.NoError(t, b.DeleteDay(day))

	_, err := mem.Get(KeyForDay(PrefixExercises, day))
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = mem.Get(KeyForDay(PrefixFoodLog, day))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.Equal(t, 4, b.ExerciseTarget(day))
	assert.Equal(t, 2000, b.CalorieTarget(day))
	assert.Equal(t, 7.0, b.SleepMap()[day])
	assert.Equal(t, 25, b.XP())
}

func TestExerciseDays(t *testing.T) {
	b, _ := newBook(t)
	for _, d := range []string{"2024-03-02", "2023-12-31", "2024-01-15"} {
		require.NoError(t, b.SaveExercises(d, []models.ExerciseEntry{*models.NewExerciseEntry("Plank")}))
	}
	require.NoError(t, b.SetExerciseTarget("2024-05-05", 2))

	days, err := b.ExerciseDays()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-12-31", "2024-01-15", "2024-03-02"}, days)
}

func TestUpdateSerializes(t *testing.T) {
	b, _ := newBook(t)
	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			_ = b.Update(func() error {
				return b.SetXP(b.XP() + 5)
			})
			done <- struct{}{}
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}
	assert.Equal(t, 100, b.XP())
}

func TestExportImportRoundTrip(t *testing.T) {
	src, _ := newBook(t)
	day := "2024-04-01"
	require.NoError(t, src.SaveExercises(day, []models.ExerciseEntry{*models.NewExerciseEntry("Running").WithMinutes(25)}))
	require.NoError(t, src.SaveSleepMap(map[string]float64{day: 6.5}))
	require.NoError(t, src.SetTheme(models.ThemeLight))
	require.NoError(t, src.SetLastActiveDay(day))
	require.NoError(t, src.SetXP(40))

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var raw []byte
			var err error
			if format == "json" {
				raw, err = src.ExportJSON()
			} else {
				raw, err = src.ExportYAML()
			}
			require.NoError(t, err)

			data, err := ParseExport(raw)
			require.NoError(t, err)
			assert.Equal(t, "fitdash", data.Tool)

			dst, _ := newBook(t)
			n, err := dst.Import(data)
			require.NoError(t, err)
			assert.Equal(t, len(data.Entries), n)

			ex := dst.Exercises(day)
			require.Len(t, ex, 1)
			assert.Equal(t, 25.0, ex[0].MinutesOrZero())
			assert.Equal(t, 6.5, dst.SleepMap()[day])
			assert.Equal(t, models.ThemeLight, dst.Theme())
			assert.Equal(t, day, dst.LastActiveDay())
			assert.Equal(t, 40, dst.XP())
		})
	}
}
