// ABOUTME: Favourite meal actions: save a day's log, apply and delete.
package tracker

import (
	"strings"

	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
)

// SaveDayAsMeal snapshots the day's food log as a named meal.
func (t *Tracker) SaveDayAsMeal(day, name string) (*models.FavouriteMeal, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("meal name is required")
	}

	var meal *models.FavouriteMeal
	err := t.book.Update(func() error {
		log := t.book.FoodLog(day)
		if len(log) == 0 {
			return invalid("no food logged on %s", day)
		}
		meal = models.MealFromLog(name, log)
		return t.book.SaveFavMeals(append([]models.FavouriteMeal{*meal}, t.book.FavMeals()...))
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// ApplyMeal prepends fresh entries from the meal to the day's log.
func (t *Tracker) ApplyMeal(day, mealID string) ([]models.FoodLogEntry, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}

	var entries []models.FoodLogEntry
	err := t.book.Update(func() error {
		for _, m := range t.book.FavMeals() {
			if m.ID != mealID {
				continue
			}
			entries = m.Expand(t.now())
			log := t.book.FoodLog(day)
			return t.book.SaveFoodLog(day, append(append([]models.FoodLogEntry{}, entries...), log...))
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	t.reward(gamify.XPFood)
	return entries, nil
}

// DeleteMeal removes the meal with id.
func (t *Tracker) DeleteMeal(id string) error {
	return t.book.Update(func() error {
		meals := t.book.FavMeals()
		out := meals[:0]
		for _, m := range meals {
			if m.ID != id {
				out = append(out, m)
			}
		}
		if len(out) == len(meals) {
			return ErrNotFound
		}
		return t.book.SaveFavMeals(out)
	})
}
