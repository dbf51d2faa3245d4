package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/handoff"
	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/report"
	"github.com/harrison/careerfit/internal/session"
)

// ErrAbandoned is returned when the respondent quits before the last question
var ErrAbandoned = errors.New("assessment abandoned")

// NewTakeCommand creates the take subcommand
func NewTakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Take the assessment interactively",
		Long: `Ask every question of the assessment on the terminal, save the answers
and score them.

Answer Likert questions with a number on the scale and other questions with
the option letter. Enter "back" to return to the previous question or
"quit" to stop without saving.`,
		Args: cobra.NoArgs,
		RunE: runTake,
	}

	cmd.Flags().String("handoff", "", "Where to save the answers (default: <home>/assessment.json)")
	cmd.Flags().Bool("no-score", false, "Save the answers without scoring them")
	cmd.Flags().String("format", "", "Output format: text, markdown, html, json (default: config report.format)")
	cmd.Flags().Bool("no-history", false, "Do not record the result in the history database")

	return cmd
}

func runTake(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer e.Close()

	path := e.cfg.HandoffPath
	if p, _ := cmd.Flags().GetString("handoff"); p != "" {
		path = p
	}

	out := cmd.OutOrStdout()
	bar := report.NewBar(30, useColor(e.cfg.Report.Color, out))

	rec := session.NewRecorder(e.assessment, time.Now())

	fmt.Fprintf(out, "%s\n%s\n", e.assessment.Title, e.assessment.Description)
	fmt.Fprintf(out, "%d questions, about %d minutes.\n", rec.Progress(time.Now()).TotalQuestions, e.assessment.EstimatedMinutes)
	if err := askAll(rec, bufio.NewScanner(cmd.InOrStdin()), out, bar); err != nil {
		return err
	}

	h := rec.Handoff(time.Now())
	if err := handoff.NewStore(path).Save(h); err != nil {
		return err
	}
	e.log.LogInfo(fmt.Sprintf("saved %d answers to %s", len(h.Responses), path))

	if noScore, _ := cmd.Flags().GetBool("no-score"); noScore {
		fmt.Fprintf(out, "\nAnswers saved. Run 'careerfit score' to see your results.\n")
		return nil
	}

	fmt.Fprintln(out)
	_, err = scoreHandoff(cmd.Context(), e, h, out, "")
	return err
}

// askAll runs the question loop until every question is answered.
// Rejected answers are reported and the question is asked again.
func askAll(rec *session.Recorder, in *bufio.Scanner, out io.Writer, bar *report.Bar) error {
	lastSection := ""
	for !rec.Done() {
		q, s, _ := rec.Current()
		if s.ID != lastSection {
			fmt.Fprintf(out, "\n== %s ==\n%s\n", s.Title, s.Description)
			lastSection = s.ID
		}

		p := rec.Progress(time.Now())
		fmt.Fprintf(out, "\n%s\n", bar.Progress(p.CompletedQuestions, p.TotalQuestions))
		writeQuestion(out, q)

		asked := time.Now()
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			return fmt.Errorf("%w: input ended after %d of %d questions", ErrAbandoned, p.CompletedQuestions, p.TotalQuestions)
		}
		input := strings.TrimSpace(in.Text())

		switch strings.ToLower(input) {
		case "quit":
			return ErrAbandoned
		case "back":
			if !rec.Back() {
				fmt.Fprintln(out, "Already at the first question.")
			}
			lastSection = ""
			continue
		}

		if err := rec.Answer(parseAnswer(q, input), time.Since(asked).Seconds()); err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
	}
	return nil
}

func writeQuestion(out io.Writer, q *models.Question) {
	fmt.Fprintf(out, "%s\n", q.Prompt)
	if q.Type.IsScale() && q.Scale != nil {
		fmt.Fprintf(out, "  %g (%s) to %g (%s)\n", q.Scale.Min, q.Scale.MinLabel, q.Scale.Max, q.Scale.MaxLabel)
		return
	}
	for _, o := range q.Options {
		fmt.Fprintf(out, "  %s) %s\n", o.ID, o.Text)
	}
}

// parseAnswer reads a number for scale questions and an option id otherwise
func parseAnswer(q *models.Question, input string) models.Answer {
	if q.Type.IsScale() {
		if v, err := strconv.ParseFloat(input, 64); err == nil {
			return models.NumberAnswer(v)
		}
	}
	return models.ChoiceAnswer(strings.ToLower(input))
}
