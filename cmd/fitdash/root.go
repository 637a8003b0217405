// ABOUTME: Root Cobra command for fitdash CLI.
// ABOUTME: Loads config and opens the store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/fitdash/internal/config"
	"github.com/harperreed/fitdash/internal/logging"
	"github.com/harperreed/fitdash/internal/records"
	"github.com/harperreed/fitdash/internal/storage"
	"github.com/harperreed/fitdash/internal/tracker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	backendFlag string
	dataDirFlag string

	cfg   *config.Config
	store storage.Store
	book  *records.Book
	trk   *tracker.Tracker

	// clock is swapped in tests to pin "today".
	clock = time.Now
)

// noStore lists top-level commands that run without opening the data store.
var noStore = map[string]bool{
	"help":          true,
	"completion":    true,
	"install-skill": true,
	"config":        true,
}

var rootCmd = &cobra.Command{
	Use:   "fitdash",
	Short: "Personal fitness dashboard",
	Long: `fitdash tracks exercises, food, sleep and body weight, and derives the
numbers a fitness dashboard shows from them: daily and 7-day trends,
progress series, and an XP/level/streak game layer.

QUICK START:

  $ fitdash exercise add "Bench Press" --sets 3 --reps 8 --weight 50
  $ fitdash exercise add Running --minutes 30
  $ fitdash food log "Oatmeal" --qty 2      # Log from the food library
  $ fitdash sleep set 7.5 --quality good
  $ fitdash weight 81.4
  $ fitdash today                           # Progress against today's targets
  $ fitdash trends                          # Daily and weekly deltas

DATES:

  Most commands take --date YYYY-MM-DD (or "yesterday"). The default is
  today in local time.

STORAGE:

  Data lives in a key-value store selected by --backend or the config file:
    sqlite   ~/.local/share/fitdash/fitdash.db (default)
    badger   ~/.local/share/fitdash/badger
    charm    Charm KV, E2E encrypted and synced (see 'fitdash sync')
    memory   nothing persisted

MCP INTEGRATION:

  Run 'fitdash mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "fitdash": { "command": "fitdash", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backendFlag != "" {
			if err := cfg.Set("backend", backendFlag); err != nil {
				return err
			}
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}
		logging.Setup(cfg.LoggingParams())

		if skipsStore(cmd) {
			return nil
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		log.WithFields(log.Fields{
			"backend":  cfg.GetBackend(),
			"data_dir": cfg.GetDataDir(),
		}).Debug("store opened")

		book = records.New(store)
		trk = tracker.New(book,
			tracker.WithClock(clock),
			tracker.WithSleepGoal(cfg.GetSleepGoal()),
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// closeStore releases the open store. Cobra skips PersistentPostRunE when
// RunE fails, so main calls this as well.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

// skipsStore reports whether cmd sits under a store-free top-level command.
func skipsStore(cmd *cobra.Command) bool {
	root := cmd.Root()
	c := cmd
	for c.HasParent() && c.Parent() != root {
		c = c.Parent()
	}
	return c == root || noStore[c.Name()]
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend (sqlite, badger, charm, memory)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.local/share/fitdash)")
}
