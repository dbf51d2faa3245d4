package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the careerfit home directory
const HomeEnv = "CAREERFIT_HOME"

// ConfigFile is the configuration file name inside the home directory
const ConfigFile = "config.yaml"

// GetHome returns the careerfit home directory, creating it if needed.
// Priority order:
//  1. CAREERFIT_HOME environment variable (if set)
//  2. .careerfit under the current working directory
func GetHome() (string, error) {
	home := os.Getenv(HomeEnv)
	if home == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		home = filepath.Join(cwd, ".careerfit")
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create careerfit home directory: %w", err)
	}
	return home, nil
}
