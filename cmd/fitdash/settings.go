// ABOUTME: CLI commands for display settings, burn rate and day reset.
// ABOUTME: Settings are stored alongside the data so they travel with sync.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	resetDate string
	resetYes  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change stored settings.

  burn-rate   kcal burned per exercise minute (default 6)
  theme       dark or light
  accent      emerald, sky, violet, amber or rose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("  burn rate  %g kcal/min\n", book.BurnRate())
		fmt.Printf("  theme      %s\n", book.Theme())
		fmt.Printf("  accent     %s\n", book.Accent())
		fmt.Printf("  sleep goal %g h\n", trk.SleepGoal())
		return nil
	},
}

var settingsBurnRateCmd = &cobra.Command{
	Use:   "burn-rate <kcal-per-min>",
	Short: "Set the exercise burn rate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseNumber("burn rate", args[0])
		if err != nil {
			return err
		}
		if err := trk.SetBurnRate(v); err != nil {
			return fmt.Errorf("failed to set burn rate: %w", err)
		}
		color.Green("✓ Burn rate set to %g kcal/min", v)
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <dark|light>",
	Short:     "Set the display theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trk.SetTheme(strings.ToLower(args[0])); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
		color.Green("✓ Theme set to %s", book.Theme())
		return nil
	},
}

var settingsAccentCmd = &cobra.Command{
	Use:       "accent <color>",
	Short:     "Set the accent color",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"emerald", "sky", "violet", "amber", "rose"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trk.SetAccent(strings.ToLower(args[0])); err != nil {
			return fmt.Errorf("failed to set accent: %w", err)
		}
		color.Green("✓ Accent set to %s", book.Accent())
		return nil
	},
}

var resetDayCmd = &cobra.Command{
	Use:   "reset-day",
	Short: "Clear a day's exercises and food log",
	Long: `Clear the exercises and food log for a day. Targets, sleep and body weight
are kept.

Examples:
  fitdash reset-day --date 2024-05-09 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(resetDate)
		if err != nil {
			return err
		}

		if !resetYes {
			fmt.Printf("Clear exercises and food log for %s? [y/N]: ", day)
			var confirm string
			_, _ = fmt.Scanln(&confirm)
			if confirm != "y" && confirm != "Y" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := trk.ResetDay(day); err != nil {
			return fmt.Errorf("failed to reset day: %w", err)
		}
		color.Yellow("✗ Cleared %s", day)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsBurnRateCmd, settingsThemeCmd, settingsAccentCmd)

	addDateFlag(resetDayCmd, &resetDate)
	resetDayCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")

	rootCmd.AddCommand(settingsCmd, resetDayCmd)
}
