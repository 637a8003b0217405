// ABOUTME: Process-wide records: food library, favourites, settings and
// ABOUTME: gamification state, each loaded from the store or defaulted.
package records

import (
	"github.com/harperreed/fitdash/internal/models"
)

// Foods returns the food library, seeded with the default items when
// nothing has been stored yet.
func (b *Book) Foods() []models.FoodItem {
	l := getJSON[[]models.FoodItem](b, KeyFoods)
	if !l.ok || l.value == nil {
		return models.DefaultFoods()
	}
	return l.value
}

// SaveFoods replaces the food library.
func (b *Book) SaveFoods(foods []models.FoodItem) error {
	if foods == nil {
		foods = []models.FoodItem{}
	}
	return setJSON(b, KeyFoods, foods)
}

// FavFoodIDs returns the favourite food ids.
func (b *Book) FavFoodIDs() []string {
	ids := getJSON[[]string](b, KeyFavFoodIDs).or(nil)
	if ids == nil {
		return []string{}
	}
	return ids
}

// SaveFavFoodIDs replaces the favourite food ids.
func (b *Book) SaveFavFoodIDs(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return setJSON(b, KeyFavFoodIDs, ids)
}

// FavMeals returns the saved meal templates.
func (b *Book) FavMeals() []models.FavouriteMeal {
	meals := getJSON[[]models.FavouriteMeal](b, KeyFavMeals).or(nil)
	if meals == nil {
		return []models.FavouriteMeal{}
	}
	return meals
}

// SaveFavMeals replaces the saved meal templates.
func (b *Book) SaveFavMeals(meals []models.FavouriteMeal) error {
	if meals == nil {
		meals = []models.FavouriteMeal{}
	}
	return setJSON(b, KeyFavMeals, meals)
}

// BurnRate is kcal per exercise minute, 6 when unset.
func (b *Book) BurnRate() float64 {
	return b.getFloat(KeyBurnRate).or(DefaultBurnRate)
}

// SetBurnRate stores the burn rate.
func (b *Book) SetBurnRate(kcalPerMin float64) error {
	return b.setFloat(KeyBurnRate, kcalPerMin)
}

// Theme returns the stored theme, dark when unset or unknown.
func (b *Book) Theme() models.Theme {
	s, ok := b.getText(KeyTheme)
	if !ok || !models.IsValidTheme(s) {
		return models.ThemeDark
	}
	return models.Theme(s)
}

// SetTheme stores the theme.
func (b *Book) SetTheme(t models.Theme) error {
	return b.setText(KeyTheme, string(t))
}

// Accent returns the stored accent, emerald when unset or unknown.
func (b *Book) Accent() models.Accent {
	s, ok := b.getText(KeyAccent)
	if !ok || !models.IsValidAccent(s) {
		return models.AccentEmerald
	}
	return models.Accent(s)
}

// SetAccent stores the accent.
func (b *Book) SetAccent(a models.Accent) error {
	return b.setText(KeyAccent, string(a))
}

// XP is the accumulated experience total.
func (b *Book) XP() int {
	return int(b.getFloat(KeyXP).or(0))
}

// SetXP stores the experience total.
func (b *Book) SetXP(xp int) error {
	return b.setFloat(KeyXP, float64(xp))
}

// Streak is the consecutive-day count.
func (b *Book) Streak() int {
	return int(b.getFloat(KeyStreak).or(0))
}

// SetStreak stores the consecutive-day count.
func (b *Book) SetStreak(n int) error {
	return b.setFloat(KeyStreak, float64(n))
}

// LastActiveDay is the last day a qualifying action happened, "" if never.
func (b *Book) LastActiveDay() string {
	s, _ := b.getText(KeyLastActiveDay)
	return s
}

// SetLastActiveDay stores the last active day.
func (b *Book) SetLastActiveDay(day string) error {
	return b.setText(KeyLastActiveDay, day)
}
