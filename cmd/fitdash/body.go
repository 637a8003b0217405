// ABOUTME: CLI commands for sleep and body weight.
// ABOUTME: Sleep supports hours, quality tags and a 7-day window view.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
	"github.com/spf13/cobra"
)

var (
	bodyDate     string
	sleepQuality string
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record and review sleep",
	Long: `Record hours slept per night. Meeting the sleep goal (default 8 h, see
'fitdash config set sleep_goal_hours') today earns +30 XP.

Quality tags: sleepy, good, meh, exhausted.

EXAMPLES:

  fitdash sleep set 7.5 --quality good
  fitdash sleep set 6 --date yesterday
  fitdash sleep week`,
}

var sleepSetCmd = &cobra.Command{
	Use:   "set <hours>",
	Short: "Record hours slept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(bodyDate)
		if err != nil {
			return err
		}
		hours, err := parseNumber("hours", args[0])
		if err != nil {
			return err
		}
		if sleepQuality != "" && !models.IsValidSleepQuality(sleepQuality) {
			return fmt.Errorf("unknown sleep quality: %s (use sleepy, good, meh or exhausted)", sleepQuality)
		}

		if err := trk.SetSleep(day, hours); err != nil {
			return fmt.Errorf("failed to record sleep: %w", err)
		}
		if sleepQuality != "" {
			if err := trk.SetSleepQuality(day, sleepQuality); err != nil {
				return fmt.Errorf("failed to record sleep quality: %w", err)
			}
		}

		color.Green("✓ Recorded %g h of sleep for %s", hours, day)
		if day == trk.Today() && hours >= trk.SleepGoal() {
			color.Green("  Sleep goal met (+%d XP)", gamify.XPSleepGoal)
		}
		return nil
	},
}

var sleepWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the 7 nights ending at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(bodyDate)
		if err != nil {
			return err
		}
		week, err := trk.Metrics().SleepWindow(day)
		if err != nil {
			return err
		}

		quality := book.SleepQualityMap()
		goal := trk.SleepGoal()
		for _, d := range week.Days {
			bar := strings.Repeat("█", int(d.Hours+0.5))
			if d.Hours >= goal {
				bar = color.GreenString(bar)
			}
			fmt.Printf("  %s %5.2f h %s %s\n", faint.Sprint(d.Date), d.Hours, bar, faint.Sprint(quality[d.Date]))
		}
		fmt.Printf("  average %.2f h\n", week.Average)
		return nil
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Record body weight",
	Long: `Record body weight in kg for a day. A weight of 0 removes the entry.

Examples:
  fitdash weight 81.4
  fitdash weight 0 --date 2024-05-09`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(bodyDate)
		if err != nil {
			return err
		}
		kg, err := parseNumber("weight", args[0])
		if err != nil {
			return err
		}
		if err := trk.SetBodyWeight(day, kg); err != nil {
			return fmt.Errorf("failed to record weight: %w", err)
		}

		if kg == 0 {
			color.Yellow("✗ Removed body weight for %s", day)
			return nil
		}
		color.Green("✓ Recorded %.1f kg for %s", kg, day)
		return nil
	},
}

func init() {
	sleepSetCmd.Flags().StringVarP(&sleepQuality, "quality", "q", "", "sleep quality tag")
	for _, c := range []*cobra.Command{sleepSetCmd, sleepWeekCmd, weightCmd} {
		addDateFlag(c, &bodyDate)
	}

	sleepCmd.AddCommand(sleepSetCmd, sleepWeekCmd)
	rootCmd.AddCommand(sleepCmd, weightCmd)
}
