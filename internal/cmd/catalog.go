package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/careerfit/internal/catalog"
	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/report"
)

// NewCatalogCommand creates the catalog command group
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate question banks",
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogValidateCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sections and questions of the active question bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			sectionID, _ := cmd.Flags().GetString("section")
			category, _ := cmd.Flags().GetString("category")

			switch {
			case category != "":
				qs := catalog.QuestionsInCategory(e.assessment, category)
				if len(qs) == 0 {
					return fmt.Errorf("no questions in category %q (known: %s)", category, strings.Join(catalog.Categories(e.assessment), ", "))
				}
				fmt.Fprintf(out, "Category %s: %d question(s)\n", category, len(qs))
				for _, q := range qs {
					writeQuestionRow(out, q)
				}
				return nil

			case sectionID != "":
				s, ok := catalog.SectionByID(e.assessment, sectionID)
				if !ok {
					return fmt.Errorf("unknown section %q", sectionID)
				}
				writeSection(out, s)
				return nil
			}

			asMarkdown, _ := cmd.Flags().GetBool("markdown")
			if asMarkdown {
				_, err := io.WriteString(out, report.CatalogMarkdown(e.assessment))
				return err
			}
			writeCatalog(out, e.assessment)
			return nil
		},
	}

	cmd.Flags().Bool("markdown", false, "Print the bank as Markdown")
	cmd.Flags().String("section", "", "Only list the questions of this section id")
	cmd.Flags().String("category", "", "Only list questions tagged with this category")
	return cmd
}

func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <question-id>",
		Short: "Show one question with its options or scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			q, ok := catalog.QuestionByID(e.assessment, args[0])
			if !ok {
				return fmt.Errorf("unknown question %q", args[0])
			}
			s, _ := catalog.SectionOf(e.assessment, q.ID)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", q.ID, s.Title)
			fmt.Fprintf(out, "Type: %s  Category: %s  Weight: %g\n\n", q.Type, q.Category, q.Weight)
			writeQuestion(out, q)
			if q.CorrectAnswer != "" {
				fmt.Fprintf(out, "\nBest answer: %s\n", q.CorrectAnswer)
			}
			return nil
		},
	}
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a YAML question bank",
		Long: `Check a question bank for structural errors: unknown question types,
missing options or scales, duplicate ids and section weights that do not
sum to 1. Without a file the built-in bank is checked.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				a := catalog.Default()
				fmt.Fprintf(out, "✓ built-in bank %s is valid (%d sections, %d questions)\n", a.ID, len(a.Sections), a.TotalQuestions())
				return nil
			}

			a, err := catalog.Load(args[0])
			if err != nil {
				fmt.Fprintf(out, "✗ %s\n", args[0])
				return err
			}
			fmt.Fprintf(out, "✓ %s is valid (%d sections, %d questions)\n", args[0], len(a.Sections), a.TotalQuestions())
			return nil
		},
	}
}

func writeCatalog(w io.Writer, a *models.Assessment) {
	fmt.Fprintf(w, "%s (%s)\n", a.Title, a.ID)
	fmt.Fprintf(w, "%d questions, about %d minutes\n", a.TotalQuestions(), a.EstimatedMinutes)
	for i := range a.Sections {
		fmt.Fprintln(w)
		writeSection(w, &a.Sections[i])
	}

	fmt.Fprintf(w, "\nCategories: %s\n", strings.Join(catalog.Categories(a), ", "))
}

func writeSection(w io.Writer, s *models.Section) {
	fmt.Fprintf(w, "%s [%s] weight %.0f%%\n", s.Title, s.ID, s.Weight*100)
	for _, q := range s.Questions {
		writeQuestionRow(w, q)
	}
}

func writeQuestionRow(w io.Writer, q models.Question) {
	fmt.Fprintf(w, "  %-10s %-16s %-22s %s\n", q.ID, q.Type, q.Category, truncate(q.Prompt, 60))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
