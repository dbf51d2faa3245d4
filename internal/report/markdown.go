package report

import (
	"fmt"
	"strings"

	"github.com/harrison/careerfit/internal/models"
)

// Markdown renders a result as a GitHub-flavored Markdown document
func Markdown(r *models.AssessmentResult) string {
	var sb strings.Builder

	sb.WriteString("# Assessment Results\n\n")
	fmt.Fprintf(&sb, "**Overall score:** %.0f%%  \n", r.OverallScore)
	fmt.Fprintf(&sb, "**Recommendation:** %s (%d%% confidence)  \n", r.Recommendation.Decision.Label(), r.Recommendation.Confidence)
	fmt.Fprintf(&sb, "**Completed:** %s in %s\n\n", r.CompletedAt.UTC().Format("2006-01-02 15:04 MST"), FormatDuration(r.TimeSpent))
	fmt.Fprintf(&sb, "> %s\n\n", r.Recommendation.Reasoning)

	sb.WriteString("## Section Scores\n\n")
	sb.WriteString("| Section | Score | Insights |\n")
	sb.WriteString("|---|---:|---|\n")
	for _, s := range r.SectionScores {
		fmt.Fprintf(&sb, "| %s | %.0f%% | %s |\n", cell(s.Title), s.Percentage, cell(strings.Join(s.Insights, "; ")))
	}
	sb.WriteString("\n")

	sb.WriteString("## WISCAR Profile\n\n")
	sb.WriteString("| Dimension | Score |\n")
	sb.WriteString("|---|---:|\n")
	for _, d := range dimensionRows(r.WISCARScores) {
		fmt.Fprintf(&sb, "| %s | %.0f%% |\n", d.label, d.value)
	}
	fmt.Fprintf(&sb, "| **Overall** | **%.0f%%** |\n\n", r.WISCARScores.Overall)

	sb.WriteString("## Next Steps\n\n")
	for i, step := range r.Recommendation.NextSteps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	sb.WriteString("\n")

	if len(r.Recommendation.AlternativePaths) > 0 {
		sb.WriteString("## Alternative Career Paths\n\n")
		for _, p := range r.Recommendation.AlternativePaths {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
		sb.WriteString("\n")
	}

	if len(r.Recommendation.LearningResources) > 0 {
		sb.WriteString("## Learning Resources\n\n")
		for _, lr := range r.Recommendation.LearningResources {
			title := lr.Title
			if lr.URL != "" {
				title = fmt.Sprintf("[%s](%s)", lr.Title, lr.URL)
			}
			fmt.Fprintf(&sb, "- %s (%s, %s)", title, lr.Type, lr.Difficulty)
			if lr.Description != "" {
				fmt.Fprintf(&sb, ": %s", lr.Description)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// CatalogMarkdown lists every section and question of a bank
func CatalogMarkdown(a *models.Assessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", a.Title)
	if a.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", a.Description)
	}
	fmt.Fprintf(&sb, "%d questions, about %d minutes.\n\n", a.TotalQuestions(), a.EstimatedMinutes)

	for _, s := range a.Sections {
		fmt.Fprintf(&sb, "## %s (`%s`, weight %.2f)\n\n", s.Title, s.ID, s.Weight)
		if s.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", s.Description)
		}
		for _, q := range s.Questions {
			fmt.Fprintf(&sb, "### %s: %s\n\n", q.ID, q.Prompt)
			fmt.Fprintf(&sb, "_%s · category `%s` · weight %g_\n\n", q.Type, q.Category, q.Weight)
			switch {
			case q.Scale != nil:
				fmt.Fprintf(&sb, "Scale %g (%s) to %g (%s)\n\n", q.Scale.Min, q.Scale.MinLabel, q.Scale.Max, q.Scale.MaxLabel)
			case len(q.Options) > 0:
				for _, o := range q.Options {
					fmt.Fprintf(&sb, "- `%s` %s\n", o.ID, o.Text)
				}
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// cell escapes text for a Markdown table cell
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
