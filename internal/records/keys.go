// ABOUTME: Persisted key layout for every record family.
// ABOUTME: Global keys plus per-day prefixes suffixed with an ISO date.
package records

import "strings"

// Global keys.
const (
	KeyFoods           = "foods"
	KeyFavFoodIDs      = "fav_food_ids"
	KeyFavMeals        = "fav_meals"
	KeyXP              = "xp_total"
	KeyLastActiveDay   = "last_active_day"
	KeyStreak          = "daily_streak"
	KeyTheme           = "theme"
	KeyAccent          = "accent"
	KeySleepMap        = "sleep_map"
	KeySleepQualityMap = "sleep_quality_map"
	KeyBodyWeightMap   = "bodyweight_map"
	KeyBurnRate        = "burn_rate_kcal_per_min"
	KeySchemaVersion   = "schema_version"
)

// Per-day prefixes.
const (
	PrefixExercises      = "exercises_"
	PrefixExerciseTarget = "ex_target_"
	PrefixFoodLog        = "foodlog_"
	PrefixCalorieTarget  = "calorie_target_"
)

// SchemaVersion is written on first open; bump it when a family's encoding changes.
const SchemaVersion = 1

// Defaults for absent values.
const (
	DefaultCalorieTarget  = 2400
	DefaultExerciseTarget = 0
	DefaultBurnRate       = 6
)

// KeyForDay builds a day-scoped key.
func KeyForDay(prefix, day string) string {
	return prefix + day
}

// DayFromKey extracts the date suffix of a day-scoped key.
func DayFromKey(prefix, key string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	return strings.TrimPrefix(key, prefix), true
}
