// ABOUTME: fitdash configuration management with backend selection.
// ABOUTME: Handles settings, logging options and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/fitdash/internal/charm"
	"github.com/harperreed/fitdash/internal/fooddb"
	"github.com/harperreed/fitdash/internal/logging"
	"github.com/harperreed/fitdash/internal/storage"
)

// Backends lists the accepted storage backends.
var Backends = []string{"sqlite", "badger", "charm", "memory"}

// DefaultSleepGoal is the nightly hours goal when none is configured.
const DefaultSleepGoal = 8.0

// Config stores fitdash configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// "charm" or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts fitdash.db here. Badger uses a badger/ folder here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fitdash.
	DataDir string `json:"data_dir,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty"`
	LogJSON  bool   `json:"log_json,omitempty"`

	// FoodDBURL overrides the OpenFoodFacts base URL.
	FoodDBURL string `json:"food_db_url,omitempty"`

	SleepGoalHours float64 `json:"sleep_goal_hours,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetFoodDBURL returns the food database base URL.
func (c *Config) GetFoodDBURL() string {
	if c.FoodDBURL == "" {
		return fooddb.DefaultBaseURL
	}
	return c.FoodDBURL
}

// GetSleepGoal returns the nightly sleep goal in hours.
func (c *Config) GetSleepGoal() float64 {
	if c.SleepGoalHours <= 0 {
		return DefaultSleepGoal
	}
	return c.SleepGoalHours
}

// LoggingParams maps config onto logger setup.
func (c *Config) LoggingParams() logging.SetupParams {
	return logging.SetupParams{
		LogFileName:   ExpandPath(c.LogFile),
		LogToStderr:   c.LogFile == "",
		LogLevel:      c.LogLevel,
		LogFormatJSON: c.LogJSON,
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Store implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return storage.Open(storage.DBPath(dataDir))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		c, err := charm.InitClient()
		if err != nil {
			return nil, fmt.Errorf("open charm kv: %w", err)
		}
		return c, nil
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// Set updates one field by its JSON name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		if !validBackend(value) {
			return fmt.Errorf("unknown backend: %q (use %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "log_level":
		c.LogLevel = value
	case "log_file":
		c.LogFile = value
	case "log_json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("log_json must be true or false: %w", err)
		}
		c.LogJSON = b
	case "food_db_url":
		c.FoodDBURL = value
	case "sleep_goal_hours":
		h, err := strconv.ParseFloat(value, 64)
		if err != nil || h <= 0 {
			return fmt.Errorf("sleep_goal_hours must be a positive number")
		}
		c.SleepGoalHours = h
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

func validBackend(b string) bool {
	for _, v := range Backends {
		if v == b {
			return true
		}
	}
	return false
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitdash", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
