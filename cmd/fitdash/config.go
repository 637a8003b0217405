// ABOUTME: CLI commands for viewing and changing the config file.
// ABOUTME: Runs without opening the data store.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change the config file at $XDG_CONFIG_HOME/fitdash/config.json.

KEYS:

  backend            sqlite, badger, charm or memory
  data_dir           data directory (~ expands)
  log_level          debug, info, warn, error
  log_file           rotate logs into this file instead of stderr
  log_json           true for JSON log lines
  food_db_url        OpenFoodFacts base URL
  sleep_goal_hours   nightly sleep goal (default 8)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		fmt.Printf("  backend           %s\n", cfg.GetBackend())
		fmt.Printf("  data_dir          %s\n", cfg.GetDataDir())
		fmt.Printf("  food_db_url       %s\n", cfg.GetFoodDBURL())
		fmt.Printf("  sleep_goal_hours  %g\n", cfg.GetSleepGoal())
		fmt.Printf("  log_level         %s\n", orDefault(cfg.LogLevel, "warn"))
		fmt.Printf("  log_file          %s\n", orDefault(cfg.LogFile, "(stderr)"))
		fmt.Printf("  log_json          %t\n", cfg.LogJSON)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one config key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reload so --backend/--data-dir overrides are not persisted.
		fileCfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ %s = %s", args[0], args[1])
		return nil
	},
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
