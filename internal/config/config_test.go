package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.UserID != "anonymous" {
		t.Errorf("UserID = %q, want %q", cfg.UserID, "anonymous")
	}
	if cfg.Report.Format != "text" {
		t.Errorf("Report.Format = %q, want %q", cfg.Report.Format, "text")
	}
	if cfg.Report.Color != ColorAuto {
		t.Errorf("Report.Color = %q, want %q", cfg.Report.Color, ColorAuto)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
	if cfg.History.KeepDays != 365 {
		t.Errorf("History.KeepDays = %d, want 365", cfg.History.KeepDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestLoadConfigValidFile tests loading a full YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
log_dir: /tmp/careerfit-logs
catalog_path: banks/custom.yaml
handoff_path: /tmp/handoff.json
user_id: jordan
report:
  format: markdown
  color: never
history:
  enabled: false
  db_path: /tmp/results.db
  keep_days: 0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"LogLevel", cfg.LogLevel, "debug"},
		{"LogDir", cfg.LogDir, "/tmp/careerfit-logs"},
		{"CatalogPath", cfg.CatalogPath, "banks/custom.yaml"},
		{"HandoffPath", cfg.HandoffPath, "/tmp/handoff.json"},
		{"UserID", cfg.UserID, "jordan"},
		{"Report.Format", cfg.Report.Format, "markdown"},
		{"Report.Color", cfg.Report.Color, ColorNever},
		{"History.Enabled", cfg.History.Enabled, false},
		{"History.DBPath", cfg.History.DBPath, "/tmp/results.db"},
		{"History.KeepDays", cfg.History.KeepDays, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// TestLoadConfigPartialHistory keeps defaults for keys the file omits
func TestLoadConfigPartialHistory(t *testing.T) {
	path := writeConfig(t, "history:\n  db_path: /tmp/other.db\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should keep its default when omitted")
	}
	if cfg.History.KeepDays != 365 {
		t.Errorf("History.KeepDays = %d, want default 365", cfg.History.KeepDays)
	}
	if cfg.History.DBPath != "/tmp/other.db" {
		t.Errorf("History.DBPath = %q, want /tmp/other.db", cfg.History.DBPath)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

// TestLoadConfigMalformed tests that invalid YAML is an error
func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "log_level: [debug\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail on malformed YAML")
	}
}

func TestLoadConfigFromHome(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ConfigFile), []byte("user_id: sam\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromHome(home)
	if err != nil {
		t.Fatalf("LoadConfigFromHome() error = %v", err)
	}
	if cfg.UserID != "sam" {
		t.Errorf("UserID = %q, want sam", cfg.UserID)
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "debug"
	bank := "bank.yaml"
	format := "json"
	noHistory := true

	cfg.MergeWithFlags(&level, &bank, &format, &noHistory)

	if cfg.LogLevel != "debug" || cfg.CatalogPath != "bank.yaml" || cfg.Report.Format != "json" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.History.Enabled {
		t.Error("--no-history should disable history")
	}

	// Nil flags leave values alone
	cfg.MergeWithFlags(nil, nil, nil, nil)
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel changed by nil flag: %q", cfg.LogLevel)
	}

	// --no-history=false does not re-enable a disabled history
	off := false
	cfg.MergeWithFlags(nil, nil, nil, &off)
	if cfg.History.Enabled {
		t.Error("History should stay disabled")
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HandoffPath = "/custom/handoff.json"
	cfg.ResolvePaths("/home/u/.careerfit")

	if cfg.LogDir != filepath.Join("/home/u/.careerfit", "logs") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.HandoffPath != "/custom/handoff.json" {
		t.Errorf("HandoffPath overwritten: %q", cfg.HandoffPath)
	}
	if cfg.History.DBPath != filepath.Join("/home/u/.careerfit", "history.db") {
		t.Errorf("History.DBPath = %q", cfg.History.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"uppercase level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"md alias", func(c *Config) { c.Report.Format = "md" }, false},
		{"txt alias", func(c *Config) { c.Report.Format = "txt" }, false},
		{"mixed case", func(c *Config) { c.Report.Format = "HTML" }, false},
		{"bad format", func(c *Config) { c.Report.Format = "pdf" }, true},
		{"bad color", func(c *Config) { c.Report.Color = "sometimes" }, true},
		{"negative keep days", func(c *Config) { c.History.KeepDays = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHomeWithEnvVar(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "home")
	t.Setenv(HomeEnv, custom)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != custom {
		t.Errorf("GetHome() = %q, want %q", home, custom)
	}
	if info, err := os.Stat(custom); err != nil || !info.IsDir() {
		t.Error("GetHome() should create the directory")
	}
}

func TestGetHomeDefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv(HomeEnv, "")
	dir := t.TempDir()
	t.Chdir(dir)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if filepath.Base(home) != ".careerfit" {
		t.Errorf("GetHome() = %q, want a .careerfit directory", home)
	}
}
