package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/catalog"
	"github.com/harrison/careerfit/internal/config"
	"github.com/harrison/careerfit/internal/logger"
	"github.com/harrison/careerfit/internal/models"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for careerfit
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careerfit",
		Short: "Career readiness assessment and fit recommendations",
		Long: `careerfit runs a career readiness assessment for case management and
turns the answers into section scores, a WISCAR profile (Will, Interest,
Skill, Cognitive ability, Ability to learn, Real-world alignment) and a
strong, conditional or poor fit recommendation.

State lives in the careerfit home directory: $CAREERFIT_HOME, or .careerfit
under the current directory. Configuration is read from config.yaml there.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: <home>/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("catalog", "", "Path to a YAML question bank (default: built-in)")

	cmd.AddCommand(NewTakeCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewCatalogCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewResetCommand())
	cmd.AddCommand(NewMCPCommand())

	return cmd
}

// env is the state every subcommand shares: configuration, logging and
// the question bank.
type env struct {
	home       string
	cfg        *config.Config
	log        logger.Logger
	fileLog    *logger.FileLogger
	assessment *models.Assessment
}

// Close flushes the run log
func (e *env) Close() {
	if e.fileLog != nil {
		e.fileLog.Close()
	}
}

// loadEnv resolves the home directory, loads and validates configuration
// with flag overrides, opens the loggers and loads the question bank.
// Console logs go to logOut.
func loadEnv(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	home, err := config.GetHome()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromHome(home)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, catalogPath *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("catalog") {
		v, _ := cmd.Flags().GetString("catalog")
		catalogPath = &v
	}
	var format *string
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		v := f.Value.String()
		format = &v
	}
	var noHistory *bool
	if f := cmd.Flags().Lookup("no-history"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("no-history")
		noHistory = &v
	}
	cfg.MergeWithFlags(logLevel, catalogPath, format, noHistory)
	cfg.ResolvePaths(home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &env{home: home, cfg: cfg}

	console := logger.NewConsoleLogger(logOut, cfg.LogLevel)
	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.LogWarn(fmt.Sprintf("file logging disabled: %v", err))
		e.log = console
	} else {
		e.fileLog = fileLog
		e.log = logger.MultiLogger{console, fileLog}
	}

	e.assessment, err = catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.log.LogDebug(fmt.Sprintf("loaded question bank %s (%d questions)", e.assessment.ID, e.assessment.TotalQuestions()))

	return e, nil
}

// useColor applies the report.color setting to w. In auto mode only a
// terminal gets color.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
