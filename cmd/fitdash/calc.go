// ABOUTME: CLI command for the BMR/TDEE calorie target calculator.
// ABOUTME: Optionally stores the computed target for a day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/calc"
	"github.com/spf13/cobra"
)

var (
	calcSex      string
	calcAge      float64
	calcHeight   float64
	calcWeight   float64
	calcActivity string
	calcGoal     string
	calcRate     float64
	calcApply    bool
	calcDate     string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate a daily calorie target",
	Long: `Estimate BMR (Mifflin-St Jeor), TDEE and a goal-based daily calorie target.

Activity levels: sedentary, light, moderate, very, extra.
Goals: lose, maintain, gain. --rate is the intended change in kg per week
(one kg is about 7700 kcal). Targets never go below 1200 kcal.

Examples:
  fitdash calc --sex male --age 30 --height 180 --weight 80
  fitdash calc --sex female --age 28 --height 165 --weight 62 --goal lose --rate 0.5 --apply`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if calcWeight == 0 {
			if kg, ok := latestWeight(); ok {
				calcWeight = kg
			}
		}

		res, err := calc.Calculate(calc.Profile{
			Sex:       calc.ParseSex(calcSex),
			AgeYears:  calcAge,
			HeightCm:  calcHeight,
			WeightKg:  calcWeight,
			Activity:  calc.ParseActivity(calcActivity),
			Goal:      calc.ParseGoal(calcGoal),
			KgPerWeek: calcRate,
		})
		if err != nil {
			return err
		}

		fmt.Printf("  BMR     %d kcal\n", res.BMR)
		fmt.Printf("  TDEE    %d kcal\n", res.TDEE)
		if res.DailyDelta != 0 {
			fmt.Printf("  Adjust  %s\n", faint.Sprintf("%d kcal/day", res.DailyDelta))
		}
		fmt.Printf("  Target  %s\n", color.New(color.Bold).Sprintf("%d kcal/day", res.Target))

		if calcApply {
			day, err := resolveDay(calcDate)
			if err != nil {
				return err
			}
			if err := trk.SetCalorieTarget(day, res.Target); err != nil {
				return fmt.Errorf("failed to apply target: %w", err)
			}
			color.Green("✓ Calorie target for %s set to %d kcal", day, res.Target)
		}
		return nil
	},
}

// latestWeight returns the most recent recorded body weight.
func latestWeight() (float64, bool) {
	series := book.BodyWeightMap()
	var last string
	for d := range series {
		if d > last {
			last = d
		}
	}
	if last == "" {
		return 0, false
	}
	return series[last], true
}

func init() {
	calcCmd.Flags().StringVar(&calcSex, "sex", "", "male or female")
	calcCmd.Flags().Float64Var(&calcAge, "age", 0, "age in years")
	calcCmd.Flags().Float64Var(&calcHeight, "height", 0, "height in cm")
	calcCmd.Flags().Float64Var(&calcWeight, "weight", 0, "weight in kg (default: latest recorded)")
	calcCmd.Flags().StringVar(&calcActivity, "activity", "moderate", "activity level")
	calcCmd.Flags().StringVar(&calcGoal, "goal", "maintain", "lose, maintain or gain")
	calcCmd.Flags().Float64Var(&calcRate, "rate", 0, "kg per week to lose or gain")
	calcCmd.Flags().BoolVar(&calcApply, "apply", false, "store the target for the day")
	addDateFlag(calcCmd, &calcDate)
	rootCmd.AddCommand(calcCmd)
}
