// ABOUTME: Food library, food log and favourite meal models.
// ABOUTME: Log entries are value snapshots of library items plus quantity.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FoodItem is a catalog entry with calories per serving.
type FoodItem struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Calories float64 `json:"calories" yaml:"calories"`
	Serving  string  `json:"serving,omitempty" yaml:"serving,omitempty"`
}

// NewFoodItem creates a library item with a generated ID.
func NewFoodItem(name string, calories float64, serving string) *FoodItem {
	return &FoodItem{
		ID:       NewID(),
		Name:     name,
		Calories: calories,
		Serving:  serving,
	}
}

// FoodLogEntry is a FoodItem snapshot logged on a day.
type FoodLogEntry struct {
	FoodItem `yaml:",inline"`
	Qty      float64   `json:"qty" yaml:"qty"`
	LoggedAt time.Time `json:"loggedAt" yaml:"logged_at"`
}

// NewFoodLogEntry copies item by value and stamps it with the current time.
func NewFoodLogEntry(item FoodItem, qty float64) *FoodLogEntry {
	return &FoodLogEntry{
		FoodItem: item,
		Qty:      qty,
		LoggedAt: time.Now(),
	}
}

// TotalCalories is calories times quantity.
func (e *FoodLogEntry) TotalCalories() float64 {
	return e.Calories * e.Qty
}

// MealItem is one line of a favourite meal template.
type MealItem struct {
	Name     string  `json:"name" yaml:"name"`
	Calories float64 `json:"calories" yaml:"calories"`
	Serving  string  `json:"serving,omitempty" yaml:"serving,omitempty"`
	Qty      float64 `json:"qty" yaml:"qty"`
}

// FavouriteMeal is a saved template that expands into log entries.
type FavouriteMeal struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Items []MealItem `json:"items" yaml:"items"`
}

// MealFromLog snapshots a day's log into a meal template.
func MealFromLog(name string, log []FoodLogEntry) *FavouriteMeal {
	items := make([]MealItem, 0, len(log))
	for _, e := range log {
		items = append(items, MealItem{
			Name:     e.Name,
			Calories: e.Calories,
			Serving:  e.Serving,
			Qty:      e.Qty,
		})
	}
	return &FavouriteMeal{
		ID:    NewID(),
		Name:  name,
		Items: items,
	}
}

// Expand turns the template into fresh log entries stamped at now.
func (m *FavouriteMeal) Expand(now time.Time) []FoodLogEntry {
	entries := make([]FoodLogEntry, 0, len(m.Items))
	for _, it := range m.Items {
		entries = append(entries, FoodLogEntry{
			FoodItem: FoodItem{
				ID:       NewID(),
				Name:     it.Name,
				Calories: it.Calories,
				Serving:  it.Serving,
			},
			Qty:      it.Qty,
			LoggedAt: now,
		})
	}
	return entries
}

// DefaultFoods seeds the library when none has been stored yet. IDs are
// derived from the name so they are stable across reads.
func DefaultFoods() []FoodItem {
	seed := []struct {
		name     string
		calories float64
		serving  string
	}{
		{"Banana", 105, "1 medium"},
		{"Apple", 95, "1 medium"},
		{"Chicken Breast", 165, "100 g"},
		{"White Rice", 206, "1 cup cooked"},
		{"Eggs", 78, "1 large"},
		{"Greek Yogurt", 130, "170 g"},
		{"Oats", 150, "40 g (dry)"},
		{"Almonds", 170, "28 g (handful)"},
		{"Broccoli", 55, "1 cup"},
		{"Olive Oil", 119, "1 tbsp"},
	}
	foods := make([]FoodItem, 0, len(seed))
	for _, s := range seed {
		foods = append(foods, FoodItem{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("fitdash/food/"+s.name)).String(),
			Name:     s.name,
			Calories: s.calories,
			Serving:  s.serving,
		})
	}
	return foods
}
