package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/careerfit/internal/report"
)

// ReportConfig controls how results are rendered
type ReportConfig struct {
	// Format is the default output format (text, markdown, html, json)
	Format string `yaml:"format"`

	// Color is auto, always or never. auto colors only when stdout is a terminal.
	Color string `yaml:"color"`
}

// HistoryConfig controls the results database
type HistoryConfig struct {
	// Enabled records every scored assessment
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database file. Empty means <home>/history.db.
	DBPath string `yaml:"db_path"`

	// KeepDays prunes results older than this many days (0 = keep forever)
	KeepDays int `yaml:"keep_days"`
}

// Config represents careerfit configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is where run logs are written. Empty means <home>/logs.
	LogDir string `yaml:"log_dir"`

	// CatalogPath points at a custom question bank; empty uses the built-in bank
	CatalogPath string `yaml:"catalog_path"`

	// HandoffPath is the completed-session record. Empty means <home>/assessment.json.
	HandoffPath string `yaml:"handoff_path"`

	// UserID is stamped on every result
	UserID string `yaml:"user_id"`

	Report  ReportConfig  `yaml:"report"`
	History HistoryConfig `yaml:"history"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		UserID:   "anonymous",
		Report: ReportConfig{
			Format: "text",
			Color:  ColorAuto,
		},
		History: HistoryConfig{
			Enabled:  true,
			KeepDays: 365,
		},
	}
}

// LoadConfig loads configuration from path, merged over the defaults.
// A missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.CatalogPath != "" {
		cfg.CatalogPath = fileCfg.CatalogPath
	}
	if fileCfg.HandoffPath != "" {
		cfg.HandoffPath = fileCfg.HandoffPath
	}
	if fileCfg.UserID != "" {
		cfg.UserID = fileCfg.UserID
	}
	if fileCfg.Report.Format != "" {
		cfg.Report.Format = fileCfg.Report.Format
	}
	if fileCfg.Report.Color != "" {
		cfg.Report.Color = fileCfg.Report.Color
	}

	// Booleans and zero ints are only applied when the key is present
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, ok := rawMap["history"].(map[string]interface{}); ok {
			if _, exists := section["enabled"]; exists {
				cfg.History.Enabled = fileCfg.History.Enabled
			}
			if _, exists := section["db_path"]; exists {
				cfg.History.DBPath = fileCfg.History.DBPath
			}
			if _, exists := section["keep_days"]; exists {
				cfg.History.KeepDays = fileCfg.History.KeepDays
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromHome loads <home>/config.yaml
func LoadConfigFromHome(home string) (*Config, error) {
	return LoadConfig(filepath.Join(home, ConfigFile))
}

// MergeWithFlags applies CLI flags over the configuration.
// Nil pointers leave the configured value alone.
func (c *Config) MergeWithFlags(logLevel, catalogPath, format *string, noHistory *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if catalogPath != nil {
		c.CatalogPath = *catalogPath
	}
	if format != nil {
		c.Report.Format = *format
	}
	if noHistory != nil && *noHistory {
		c.History.Enabled = false
	}
}

// ResolvePaths fills empty file locations with their defaults under home
func (c *Config) ResolvePaths(home string) {
	if c.LogDir == "" {
		c.LogDir = filepath.Join(home, "logs")
	}
	if c.HandoffPath == "" {
		c.HandoffPath = filepath.Join(home, "assessment.json")
	}
	if c.History.DBPath == "" {
		c.History.DBPath = filepath.Join(home, "history.db")
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("invalid report.format: %w", err)
	}

	switch c.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid report.color %q, must be one of: auto, always, never", c.Report.Color)
	}

	if c.History.KeepDays < 0 {
		return fmt.Errorf("history.keep_days must be >= 0, got %d", c.History.KeepDays)
	}

	return nil
}
