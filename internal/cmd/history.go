package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/history"
	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/report"
)

// NewHistoryCommand creates the history command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously scored assessments",
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryStatsCommand())

	return cmd
}

// withHistory opens the configured history database for fn
func withHistory(cmd *cobra.Command, fn func(e *env, store *history.Store) error) error {
	e, err := loadEnv(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	store, err := history.NewStore(e.cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	return fn(e, store)
}

func newHistoryListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			var want models.Decision
			if d, _ := cmd.Flags().GetString("decision"); d != "" {
				parsed, err := models.ParseDecision(d)
				if err != nil {
					return err
				}
				want = parsed
			}

			return withHistory(cmd, func(e *env, store *history.Store) error {
				// Filter before limiting so --limit counts matching results
				fetch := limit
				if want != "" {
					fetch = 0
				}
				summaries, err := store.List(cmd.Context(), fetch)
				if err != nil {
					return err
				}
				if want != "" {
					summaries = filterDecision(summaries, want, limit)
				}
				writeSummaries(cmd.OutOrStdout(), summaries)
				return nil
			})
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of results to show (0 = all)")
	cmd.Flags().String("decision", "", "Only show one tier: strong-fit, conditional-fit, poor-fit (or yes, maybe, no)")
	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full report of a stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(cmd, func(e *env, store *history.Store) error {
				result, err := store.Get(cmd.Context(), args[0])
				if errors.Is(err, history.ErrNotFound) {
					return fmt.Errorf("no result with id %s", args[0])
				}
				if err != nil {
					return err
				}

				format, err := report.ParseFormat(e.cfg.Report.Format)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				return report.Render(out, format, result, useColor(e.cfg.Report.Color, out))
			})
		},
	}

	cmd.Flags().String("format", "", "Output format: text, markdown, html, json (default: config report.format)")
	return cmd
}

func newHistoryStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize every stored result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(cmd, func(e *env, store *history.Store) error {
				st, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				writeStats(cmd.OutOrStdout(), st)
				return nil
			})
		},
	}
}

func filterDecision(summaries []history.Summary, want models.Decision, limit int) []history.Summary {
	var out []history.Summary
	for _, s := range summaries {
		if s.Decision != want {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func writeSummaries(w io.Writer, summaries []history.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPLETED\tOVERALL\tWISCAR\tDECISION\tCONFIDENCE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%.0f%%\t%.0f%%\t%s\t%d%%\n",
			s.ID,
			s.CompletedAt.Local().Format("2006-01-02 15:04"),
			s.OverallScore,
			s.WISCAROverall,
			s.Decision,
			s.Confidence,
		)
	}
	tw.Flush()
}

func writeStats(w io.Writer, st *history.Stats) {
	if st.Total == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		return
	}

	fmt.Fprintf(w, "Results:          %d\n", st.Total)
	fmt.Fprintf(w, "Average overall:  %.1f%%\n", st.AverageOverall)
	fmt.Fprintf(w, "Average WISCAR:   %.1f%%\n", st.AverageWISCAR)
	fmt.Fprintf(w, "Best overall:     %.1f%%\n", st.BestOverall)
	fmt.Fprintf(w, "Last completed:   %s\n", st.LastCompleted.Local().Format("2006-01-02 15:04"))

	decisions := make([]models.Decision, 0, len(st.Decisions))
	for d := range st.Decisions {
		decisions = append(decisions, d)
	}
	sort.Slice(decisions, func(i, j int) bool { return decisions[i].Rank() > decisions[j].Rank() })

	fmt.Fprintln(w, "Decisions:")
	for _, d := range decisions {
		fmt.Fprintf(w, "  %-16s %d\n", d.Label(), st.Decisions[d])
	}
}
