package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/history"
	"github.com/harrison/careerfit/internal/mcptools"
)

// NewMCPCommand creates the mcp subcommand
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the assessment as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing
careerfit_catalog, careerfit_score and careerfit_insights. Logs go to
stderr so they never corrupt the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			var rec mcptools.ResultRecorder
			if e.cfg.History.Enabled {
				store, err := history.NewStore(e.cfg.History.DBPath)
				if err != nil {
					return fmt.Errorf("failed to open history: %w", err)
				}
				defer store.Close()
				rec = store
			}

			s := mcptools.NewServer(e.assessment, rec, e.cfg.UserID, Version)
			e.log.LogInfo(fmt.Sprintf("serving %s over stdio", e.assessment.ID))
			return server.ServeStdio(s)
		},
	}
}
