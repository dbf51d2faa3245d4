package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/handoff"
)

// NewResetCommand creates the reset subcommand
func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved answers so the assessment can be retaken",
		Long: `Remove the saved answers of the last completed assessment. Stored
results in the history database are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := handoff.NewStore(e.cfg.HandoffPath).Clear(); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			e.log.LogDebug(fmt.Sprintf("cleared %s", e.cfg.HandoffPath))
			fmt.Fprintln(cmd.OutOrStdout(), "Saved answers cleared. Run 'careerfit take' to start again.")
			return nil
		},
	}
}
