// ABOUTME: CLI commands for favourite meals.
// ABOUTME: Save a day's log as a meal, apply it to another day, list and delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/spf13/cobra"
)

var mealDate string

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Favourite meals",
	Long: `Save a day's food log as a reusable meal and apply it later.

EXAMPLES:

  fitdash meal save "Usual breakfast"       # Snapshot today's log
  fitdash meal list
  fitdash meal apply 5e7d --date 2024-05-11  # Log it on another day (+5 XP)
  fitdash meal rm 5e7d`,
}

var mealSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the day's food log as a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(mealDate)
		if err != nil {
			return err
		}
		meal, err := trk.SaveDayAsMeal(day, args[0])
		if err != nil {
			return fmt.Errorf("failed to save meal: %w", err)
		}

		color.Green("✓ Saved meal %s (%d items)", meal.Name, len(meal.Items))
		fmt.Printf("  %s\n", faint.Sprint(shortID(meal.ID)))
		return nil
	},
}

var mealApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Log a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(mealDate)
		if err != nil {
			return err
		}
		id, err := findMeal(args[0])
		if err != nil {
			return err
		}
		entries, err := trk.ApplyMeal(day, id)
		if err != nil {
			return fmt.Errorf("failed to apply meal: %w", err)
		}

		total := 0.0
		for _, e := range entries {
			total += e.TotalCalories()
		}
		color.Green("✓ Logged %d items (%.0f kcal, +%d XP)", len(entries), total, gamify.XPFood)
		return nil
	},
}

var mealRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a saved meal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := findMeal(args[0])
		if err != nil {
			return err
		}
		if err := trk.DeleteMeal(id); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted meal %s", shortID(id))
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		meals := book.FavMeals()
		if len(meals) == 0 {
			fmt.Println("No saved meals.")
			return nil
		}
		for _, m := range meals {
			total := 0.0
			for _, it := range m.Items {
				total += it.Calories * it.Qty
			}
			fmt.Printf("  %s %s %s\n",
				faint.Sprint(shortID(m.ID)),
				padRight(m.Name, 24),
				faint.Sprintf("%d items, %.0f kcal", len(m.Items), total))
		}
		return nil
	},
}

func findMeal(prefix string) (string, error) {
	meals := book.FavMeals()
	ids := make([]string, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
	}
	id, err := matchID(ids, prefix)
	if err != nil {
		return "", fmt.Errorf("meal %w", err)
	}
	return id, nil
}

func init() {
	addDateFlag(mealSaveCmd, &mealDate)
	addDateFlag(mealApplyCmd, &mealDate)

	mealCmd.AddCommand(mealSaveCmd, mealApplyCmd, mealRmCmd, mealListCmd)
	rootCmd.AddCommand(mealCmd)
}
