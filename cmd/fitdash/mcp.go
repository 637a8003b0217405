// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitdash/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr or the
configured log file so they never interleave with protocol messages.

CONFIGURATION:

  {
    "mcpServers": {
      "fitdash": {
        "command": "fitdash",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_exercise      Log an exercise
  list_exercises    A day's exercises with progress
  remove_exercise   Remove an exercise by ID
  log_food          Log food by library ID or name and calories
  list_food_log     A day's food log against the calorie target
  search_food       Search the library or OpenFoodFacts
  set_sleep         Record hours slept and quality
  set_body_weight   Record body weight
  get_trends        Daily and 7-day trends
  get_progress      Body weight, sleep and exercise series
  get_level         XP, level and streak
  calorie_target    BMR/TDEE calculator
  reset_day         Clear a day's exercises and food log

AVAILABLE RESOURCES:

  fitdash://today    Today's entries and progress
  fitdash://trends   Today's trend cards and sleep window
  fitdash://level    XP, level and streak`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk, foodClient())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
