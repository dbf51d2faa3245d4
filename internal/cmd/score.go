package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/filelock"
	"github.com/harrison/careerfit/internal/handoff"
	"github.com/harrison/careerfit/internal/history"
	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/report"
	"github.com/harrison/careerfit/internal/scoring"
)

// NewScoreCommand creates the score subcommand
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [handoff-file]",
		Short: "Score a completed assessment",
		Long: `Score the most recently completed assessment, or the handoff file given
as an argument, and print the results.

The result is recorded in the history database unless --no-history is set
or history is disabled in config.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScore,
	}

	cmd.Flags().String("format", "", "Output format: text, markdown, html, json (default: config report.format)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Bool("no-history", false, "Do not record the result in the history database")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	path := e.cfg.HandoffPath
	if len(args) == 1 {
		path = args[0]
	}

	h, err := handoff.NewStore(path).Load()
	if err != nil {
		if errors.Is(err, handoff.ErrNoData) || errors.Is(err, handoff.ErrCorrupt) {
			return fmt.Errorf("%w: restart the assessment with 'careerfit take'", err)
		}
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	_, err = scoreHandoff(cmd.Context(), e, h, cmd.OutOrStdout(), output)
	return err
}

// scoreHandoff evaluates h, records it in history when enabled and renders
// the report to out, or to the file at output when set.
func scoreHandoff(ctx context.Context, e *env, h *models.Handoff, out io.Writer, output string) (*models.AssessmentResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := report.ParseFormat(e.cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	opts := scoring.OptionsFromHandoff(h)
	opts.UserID = e.cfg.UserID
	result, err := scoring.Evaluate(e.assessment, h.Responses, opts)
	if err != nil {
		var verr *scoring.ValidationResult
		if errors.As(err, &verr) {
			e.log.LogError(fmt.Sprintf("rejected %d response(s)", len(verr.Errors)))
		}
		return nil, err
	}

	for _, s := range result.SectionScores {
		e.log.LogSectionScore(s)
	}
	e.log.LogRecommendation(result.Recommendation)

	if e.cfg.History.Enabled {
		if err := recordResult(ctx, e, result); err != nil {
			return nil, err
		}
	}

	if output != "" {
		var buf bytes.Buffer
		if err := report.Render(&buf, format, result, false); err != nil {
			return nil, err
		}
		if err := filelock.LockAndWrite(output, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
		e.log.LogInfo(fmt.Sprintf("report written to %s", output))
		return result, nil
	}

	if err := report.Render(out, format, result, useColor(e.cfg.Report.Color, out)); err != nil {
		return nil, err
	}
	return result, nil
}

func recordResult(ctx context.Context, e *env, result *models.AssessmentResult) error {
	store, err := history.NewStore(e.cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Record(ctx, result); err != nil {
		return err
	}
	e.log.LogResultSaved(result.ID, store.Path())

	deleted, err := store.Cleanup(ctx, e.cfg.History.KeepDays)
	if err != nil {
		e.log.LogWarn(fmt.Sprintf("history cleanup failed: %v", err))
	} else if deleted > 0 {
		e.log.LogInfo(fmt.Sprintf("pruned %d result(s) older than %d days", deleted, e.cfg.History.KeepDays))
	}
	return nil
}
