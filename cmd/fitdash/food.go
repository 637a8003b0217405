// ABOUTME: CLI commands for the food library and daily food log.
// ABOUTME: Includes online lookup via OpenFoodFacts text search and barcode.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/fooddb"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
	"github.com/spf13/cobra"
)

var (
	foodDate    string
	foodQty     float64
	foodKcal    float64
	foodServing string
	foodFavOnly bool
	foodOnline  bool
	foodAdd     bool
	foodLogIt   bool
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Food library and food log",
	Long: `Manage your food library and log what you eat.

The library holds items with calories per serving. Logging copies the item
into the day's log with a quantity, so later library edits never change
past days.

COMMANDS:

  lib       Manage the food library (add, list)
  fav       Toggle a library item as favourite
  log       Log a food (+5 XP)
  list      Show the day's log against the calorie target
  qty       Change the quantity of a logged entry
  rm        Remove a logged entry
  search    Search the library, or OpenFoodFacts with --online
  barcode   Look up a product by barcode on OpenFoodFacts
  target    Set the day's calorie target

EXAMPLES:

  fitdash food lib add "Greek Yogurt" 130 --serving "170 g"
  fitdash food log yogurt --qty 2
  fitdash food log "Protein Bar" --kcal 210
  fitdash food search "peanut butter" --online
  fitdash food barcode 3017620422003 --log`,
}

var foodLibCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage the food library",
}

var foodLibAddCmd = &cobra.Command{
	Use:   "add <name> <kcal>",
	Short: "Add a food to the library",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := parseNumber("calories", args[1])
		if err != nil {
			return err
		}
		item, err := trk.AddFoodToLibrary(models.FoodItem{Name: args[0], Calories: kcal, Serving: foodServing})
		if err != nil {
			return fmt.Errorf("failed to add food: %w", err)
		}

		color.Green("✓ Added %s to library", item.Name)
		printFood(*item, false)
		return nil
	},
}

var foodLibListCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List library items",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var items []models.FoodItem
		if foodFavOnly {
			items = trk.FavouriteFoods()
		} else {
			items = trk.SearchLibrary(strings.Join(args, " "))
		}
		printFoods(items)
		return nil
	},
}

var foodFavCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle a library item as favourite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := findLibraryFood(args[0])
		if err != nil {
			return err
		}
		fav, err := trk.ToggleFavouriteFood(item.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle favourite: %w", err)
		}
		if fav {
			color.Green("★ %s is now a favourite", item.Name)
		} else {
			color.Yellow("☆ %s removed from favourites", item.Name)
		}
		return nil
	},
}

var foodLogCmd = &cobra.Command{
	Use:   "log <id|name>",
	Short: "Log a food",
	Long: `Log a food from the library by ID prefix or name. With --kcal the name is
logged as a one-off item without touching the library.

Examples:
  fitdash food log 9b1c --qty 1.5
  fitdash food log oatmeal
  fitdash food log "Birthday cake" --kcal 450 --serving slice`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(foodDate)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		var item models.FoodItem
		if cmd.Flags().Changed("kcal") {
			item = *models.NewFoodItem(strings.TrimSpace(query), foodKcal, foodServing)
		} else {
			found, err := findLibraryFood(query)
			if err != nil {
				return err
			}
			item = *found
		}

		entry, err := trk.LogFood(day, item, foodQty)
		if err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged %s × %g (%.0f kcal, +%d XP)", entry.Name, entry.Qty, entry.TotalCalories(), gamify.XPFood)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the day's food log",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(foodDate)
		if err != nil {
			return err
		}
		summary, err := trk.Metrics().DaySummary(day)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %.0f / %d kcal, %.0f remaining\n",
			color.New(color.Bold).Sprint(day),
			summary.CaloriesIn, summary.CalorieTarget, summary.CaloriesRemaining)

		log := book.FoodLog(day)
		if len(log) == 0 {
			fmt.Println("Nothing logged.")
			return nil
		}
		for i, e := range log {
			fmt.Printf("  %s %s × %s %s\n",
				faint.Sprintf("%2d", i+1),
				padRight(e.Name, 24),
				padRight(strconv.FormatFloat(e.Qty, 'f', -1, 64), 4),
				faint.Sprintf("%.0f kcal", e.TotalCalories()))
		}
		return nil
	},
}

var foodQtyCmd = &cobra.Command{
	Use:   "qty <n> <qty>",
	Short: "Change the quantity of log entry n",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(foodDate)
		if err != nil {
			return err
		}
		idx, err := logIndex(args[0])
		if err != nil {
			return err
		}
		qty, err := parseNumber("quantity", args[1])
		if err != nil {
			return err
		}
		if err := trk.EditFoodQty(day, idx, qty); err != nil {
			return fmt.Errorf("failed to change quantity: %w", err)
		}

		color.Green("✓ Quantity set to %g", qty)
		return nil
	},
}

var foodRmCmd = &cobra.Command{
	Use:     "rm <n>",
	Aliases: []string{"delete", "del"},
	Short:   "Remove log entry n",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(foodDate)
		if err != nil {
			return err
		}
		idx, err := logIndex(args[0])
		if err != nil {
			return err
		}
		if err := trk.RemoveFoodLog(day, idx); err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}

		color.Yellow("✗ Removed entry %s", args[0])
		return nil
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the library or OpenFoodFacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		if !foodOnline {
			printFoods(trk.SearchLibrary(query))
			return nil
		}

		results := foodClient().Search(cmd.Context(), query)
		if len(results) == 0 {
			fmt.Println("No products found.")
			return nil
		}
		for _, c := range results {
			fmt.Printf("  %s %s\n", padRight(truncate(c.Name, 40), 40), faint.Sprintf("%.0f kcal/100 g", c.KcalPer100g))
		}
		if foodAdd {
			for _, c := range results {
				if _, err := trk.AddFoodToLibrary(c.FoodItem()); err != nil {
					return fmt.Errorf("failed to add %s: %w", c.Name, err)
				}
			}
			color.Green("✓ Added %d products to library", len(results))
		}
		return nil
	},
}

var foodBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Look up a product by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := foodClient().Barcode(cmd.Context(), args[0])
		if !ok {
			return fmt.Errorf("no product with calorie data for barcode %s", args[0])
		}
		fmt.Printf("%s %s\n", c.Name, faint.Sprintf("%.0f kcal/100 g", c.KcalPer100g))

		item := c.FoodItem()
		if foodAdd {
			added, err := trk.AddFoodToLibrary(item)
			if err != nil {
				return fmt.Errorf("failed to add food: %w", err)
			}
			item = *added
			color.Green("✓ Added to library")
		}
		if foodLogIt {
			day, err := resolveDay(foodDate)
			if err != nil {
				return err
			}
			entry, err := trk.LogFood(day, item, foodQty)
			if err != nil {
				return fmt.Errorf("failed to log food: %w", err)
			}
			color.Green("✓ Logged %s × %g (%.0f kcal, +%d XP)", entry.Name, entry.Qty, entry.TotalCalories(), gamify.XPFood)
		}
		return nil
	},
}

var foodTargetCmd = &cobra.Command{
	Use:   "target <kcal>",
	Short: "Set the day's calorie target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(foodDate)
		if err != nil {
			return err
		}
		kcal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[0])
		}
		if err := trk.SetCalorieTarget(day, kcal); err != nil {
			return fmt.Errorf("failed to set target: %w", err)
		}

		color.Green("✓ Calorie target for %s: %d kcal", day, kcal)
		return nil
	},
}

// foodClient builds the lookup client from config.
func foodClient() *fooddb.Client {
	return fooddb.NewClient(cfg.GetFoodDBURL(), nil)
}

// findLibraryFood resolves a name, an ID prefix, or a unique name fragment
// against the library, in that order.
func findLibraryFood(query string) (*models.FoodItem, error) {
	query = strings.TrimSpace(query)
	foods := book.Foods()
	ids := make([]string, 0, len(foods))
	for i := range foods {
		if strings.EqualFold(foods[i].Name, query) {
			return &foods[i], nil
		}
		ids = append(ids, foods[i].ID)
	}
	if id, err := matchID(ids, query); err == nil {
		return trk.FindFood(id)
	}

	matches := trk.SearchLibrary(query)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no food matches %q (add it with 'fitdash food lib add' or pass --kcal)", query)
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, f := range matches {
			names = append(names, f.Name)
		}
		return nil, errors.New("several foods match: " + strings.Join(names, ", "))
	}
}

// logIndex converts a 1-based display index.
func logIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid entry number: %s", s)
	}
	return n - 1, nil
}

func printFoods(items []models.FoodItem) {
	if len(items) == 0 {
		fmt.Println("No foods found.")
		return
	}
	favs := make(map[string]bool)
	for _, id := range book.FavFoodIDs() {
		favs[id] = true
	}
	for _, f := range items {
		printFood(f, favs[f.ID])
	}
}

func printFood(f models.FoodItem, fav bool) {
	star := " "
	if fav {
		star = color.YellowString("★")
	}
	serving := ""
	if f.Serving != "" {
		serving = faint.Sprintf(" per %s", f.Serving)
	}
	fmt.Printf("  %s %s %s %.0f kcal%s\n", faint.Sprint(shortID(f.ID)), star, padRight(f.Name, 24), f.Calories, serving)
}

func init() {
	foodLibAddCmd.Flags().StringVarP(&foodServing, "serving", "s", "", "serving description")
	foodLibListCmd.Flags().BoolVar(&foodFavOnly, "fav", false, "only favourites")
	foodLibCmd.AddCommand(foodLibAddCmd, foodLibListCmd)

	foodLogCmd.Flags().Float64VarP(&foodQty, "qty", "q", 1, "number of servings")
	foodLogCmd.Flags().Float64Var(&foodKcal, "kcal", 0, "calories per serving for a one-off item")
	foodLogCmd.Flags().StringVarP(&foodServing, "serving", "s", "", "serving description for a one-off item")

	foodSearchCmd.Flags().BoolVar(&foodOnline, "online", false, "search OpenFoodFacts")
	foodSearchCmd.Flags().BoolVar(&foodAdd, "add", false, "add online results to the library")

	foodBarcodeCmd.Flags().BoolVar(&foodAdd, "add", false, "add the product to the library")
	foodBarcodeCmd.Flags().BoolVar(&foodLogIt, "log", false, "log the product (100 g per serving)")
	foodBarcodeCmd.Flags().Float64VarP(&foodQty, "qty", "q", 1, "servings of 100 g to log")

	for _, c := range []*cobra.Command{foodLogCmd, foodListCmd, foodQtyCmd, foodRmCmd, foodBarcodeCmd, foodTargetCmd} {
		addDateFlag(c, &foodDate)
	}

	foodCmd.AddCommand(foodLibCmd, foodFavCmd, foodLogCmd, foodListCmd, foodQtyCmd, foodRmCmd,
		foodSearchCmd, foodBarcodeCmd, foodTargetCmd)
	rootCmd.AddCommand(foodCmd)
}
