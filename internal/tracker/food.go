// ABOUTME: Food library and food log actions.
// ABOUTME: Log entries snapshot the library item by value.
package tracker

import (
	"math"
	"strings"

	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
)

// AddFoodToLibrary prepends item with a fresh id.
func (t *Tracker) AddFoodToLibrary(item models.FoodItem) (*models.FoodItem, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return nil, invalid("food name is required")
	}
	if !(item.Calories > 0) || math.IsInf(item.Calories, 0) {
		return nil, invalid("calories must be greater than zero")
	}
	added := models.NewFoodItem(name, item.Calories, strings.TrimSpace(item.Serving))

	err := t.book.Update(func() error {
		foods := t.book.Foods()
		return t.book.SaveFoods(append([]models.FoodItem{*added}, foods...))
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// FindFood returns the library item with id.
func (t *Tracker) FindFood(id string) (*models.FoodItem, error) {
	for _, f := range t.book.Foods() {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

// ToggleFavouriteFood flips id in the favourites set and reports whether
// it is now a favourite.
func (t *Tracker) ToggleFavouriteFood(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, invalid("food id is required")
	}
	var fav bool
	err := t.book.Update(func() error {
		ids := t.book.FavFoodIDs()
		out := make([]string, 0, len(ids)+1)
		for _, x := range ids {
			if x != id {
				out = append(out, x)
			}
		}
		if len(out) == len(ids) {
			out = append(out, id)
			fav = true
		}
		return t.book.SaveFavFoodIDs(out)
	})
	return fav, err
}

// FavouriteFoods returns library items marked favourite, in library order.
func (t *Tracker) FavouriteFoods() []models.FoodItem {
	favs := make(map[string]bool)
	for _, id := range t.book.FavFoodIDs() {
		favs[id] = true
	}
	out := []models.FoodItem{}
	for _, f := range t.book.Foods() {
		if favs[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

// SearchLibrary filters the library by case-insensitive substring. An
// empty query returns the whole library.
func (t *Tracker) SearchLibrary(query string) []models.FoodItem {
	foods := t.book.Foods()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return foods
	}
	out := []models.FoodItem{}
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

// LogFood prepends a snapshot of item with qty to the day's log.
func (t *Tracker) LogFood(day string, item models.FoodItem, qty float64) (*models.FoodLogEntry, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	if !(qty > 0) || math.IsInf(qty, 0) {
		return nil, invalid("quantity must be greater than zero")
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil, invalid("food name is required")
	}
	entry := models.NewFoodLogEntry(item, qty)
	entry.LoggedAt = t.now()

	err := t.book.Update(func() error {
		log := t.book.FoodLog(day)
		return t.book.SaveFoodLog(day, append([]models.FoodLogEntry{*entry}, log...))
	})
	if err != nil {
		return nil, err
	}
	t.reward(gamify.XPFood)
	return entry, nil
}

// EditFoodQty changes the quantity of the entry at index.
func (t *Tracker) EditFoodQty(day string, index int, qty float64) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if !finiteNonNeg(qty) {
		return invalid("quantity must be zero or more")
	}
	return t.book.Update(func() error {
		log := t.book.FoodLog(day)
		if index < 0 || index >= len(log) {
			return ErrNotFound
		}
		log[index].Qty = qty
		return t.book.SaveFoodLog(day, log)
	})
}

// RemoveFoodLog deletes the entry at index.
func (t *Tracker) RemoveFoodLog(day string, index int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	return t.book.Update(func() error {
		log := t.book.FoodLog(day)
		if index < 0 || index >= len(log) {
			return ErrNotFound
		}
		return t.book.SaveFoodLog(day, append(log[:index], log[index+1:]...))
	})
}

// SetCalorieTarget sets the day's calorie target.
func (t *Tracker) SetCalorieTarget(day string, kcal int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if kcal < 0 {
		return invalid("calorie target must be zero or more")
	}
	return t.book.SetCalorieTarget(day, kcal)
}
