package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/careerfit/internal/models"
)

const textBarWidth = 20

// Text writes a terminal report. useColor forces color on or off.
func Text(w io.Writer, r *models.AssessmentResult, useColor bool) error {
	bw := bufio.NewWriter(w)
	bar := NewBar(textBarWidth, useColor)
	heading := newColor(useColor, color.FgCyan, color.Bold)
	dim := newColor(useColor, color.Faint)

	heading.Fprintln(bw, "Assessment Results")
	fmt.Fprintf(bw, "%-22s %s\n", "Overall score", bar.Score(r.OverallScore))
	fmt.Fprintf(bw, "%-22s %s (%d%% confidence)\n", "Recommendation",
		decisionColor(useColor, r.Recommendation.Decision).Sprint(r.Recommendation.Decision.Label()),
		r.Recommendation.Confidence)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, r.Recommendation.Reasoning)

	fmt.Fprintln(bw)
	heading.Fprintln(bw, "Section Scores")
	for _, s := range r.SectionScores {
		fmt.Fprintf(bw, "  %-32s %s\n", s.Title, bar.Score(s.Percentage))
		for _, insight := range s.Insights {
			dim.Fprintf(bw, "    - %s\n", insight)
		}
	}

	fmt.Fprintln(bw)
	heading.Fprintln(bw, "WISCAR Profile")
	for _, d := range dimensionRows(r.WISCARScores) {
		fmt.Fprintf(bw, "  %-32s %s\n", d.label, bar.Score(d.value))
	}
	fmt.Fprintf(bw, "  %-32s %s\n", "Overall", bar.Score(r.WISCARScores.Overall))

	fmt.Fprintln(bw)
	heading.Fprintln(bw, "Next Steps")
	for i, step := range r.Recommendation.NextSteps {
		fmt.Fprintf(bw, "  %d. %s\n", i+1, step)
	}

	if len(r.Recommendation.AlternativePaths) > 0 {
		fmt.Fprintln(bw)
		heading.Fprintln(bw, "Alternative Career Paths")
		for _, p := range r.Recommendation.AlternativePaths {
			fmt.Fprintf(bw, "  - %s\n", p)
		}
	}

	if len(r.Recommendation.LearningResources) > 0 {
		fmt.Fprintln(bw)
		heading.Fprintln(bw, "Learning Resources")
		for _, lr := range r.Recommendation.LearningResources {
			fmt.Fprintf(bw, "  - %s (%s, %s)\n", lr.Title, lr.Type, lr.Difficulty)
			if lr.Description != "" {
				dim.Fprintf(bw, "    %s\n", lr.Description)
			}
			if lr.URL != "" {
				dim.Fprintf(bw, "    %s\n", lr.URL)
			}
		}
	}

	fmt.Fprintln(bw)
	dim.Fprintf(bw, "Completed %s in %s · result %s\n",
		r.CompletedAt.Local().Format("2006-01-02 15:04"), FormatDuration(r.TimeSpent), r.ID)

	return bw.Flush()
}

func decisionColor(enabled bool, d models.Decision) *color.Color {
	switch d {
	case models.DecisionStrongFit:
		return newColor(enabled, color.FgGreen, color.Bold)
	case models.DecisionConditionalFit:
		return newColor(enabled, color.FgYellow, color.Bold)
	default:
		return newColor(enabled, color.FgRed, color.Bold)
	}
}
