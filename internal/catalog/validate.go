package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/harrison/careerfit/internal/models"
)

// sectionWeightTolerance allows for decimal weights such as 0.3/0.35/0.35
const sectionWeightTolerance = 1e-6

// ValidationError is a single problem found in a question bank
type ValidationError struct {
	SectionID  string
	QuestionID string
	Field      string
	Message    string
}

func (e ValidationError) Error() string {
	switch {
	case e.QuestionID != "":
		return fmt.Sprintf("question %s: %s - %s", e.QuestionID, e.Field, e.Message)
	case e.SectionID != "":
		return fmt.Sprintf("section %s: %s - %s", e.SectionID, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s - %s", e.Field, e.Message)
	}
}

// ValidationResult aggregates every problem found in a bank
type ValidationResult struct {
	Errors []ValidationError
}

// Error returns aggregated error message
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("question bank validation failed with %d error(s):\n", len(r.Errors)))
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if validation found errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(sectionID, questionID, field, format string, args ...interface{}) {
	r.Errors = append(r.Errors, ValidationError{
		SectionID:  sectionID,
		QuestionID: questionID,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
	})
}

// Validate checks structural rules the scorer relies on.
// Returns nil when the bank is valid, or a *ValidationResult listing every violation.
func Validate(a *models.Assessment) error {
	result := &ValidationResult{}

	if a.ID == "" {
		result.add("", "", "id", "assessment id is required")
	}
	if len(a.Sections) == 0 {
		result.add("", "", "sections", "at least one section is required")
	}

	sectionIDs := make(map[string]bool)
	questionIDs := make(map[string]string)
	weightSum := 0.0

	for _, s := range a.Sections {
		if s.ID == "" {
			result.add("", "", "sections.id", "section id is required")
		} else if sectionIDs[s.ID] {
			result.add(s.ID, "", "id", "duplicate section id")
		}
		sectionIDs[s.ID] = true

		if s.Weight <= 0 {
			result.add(s.ID, "", "weight", "must be > 0, got %g", s.Weight)
		}
		weightSum += s.Weight

		if len(s.Questions) == 0 {
			result.add(s.ID, "", "questions", "section has no questions")
		}

		for _, q := range s.Questions {
			if q.ID == "" {
				result.add(s.ID, "", "questions.id", "question id is required")
				continue
			}
			if owner, dup := questionIDs[q.ID]; dup {
				result.add(s.ID, q.ID, "id", "duplicate question id (first defined in section %s)", owner)
			}
			questionIDs[q.ID] = s.ID

			validateQuestion(s.ID, q, result)
		}
	}

	if len(a.Sections) > 0 && math.Abs(weightSum-1) > sectionWeightTolerance {
		result.add("", "", "sections.weight", "section weights must sum to 1, got %g", weightSum)
	}

	for i, r := range a.LearningResources {
		if r.Title == "" {
			result.add("", "", fmt.Sprintf("learning_resources[%d].title", i), "title is required")
		}
	}

	if result.HasErrors() {
		return result
	}
	return nil
}

func validateQuestion(sectionID string, q models.Question, result *ValidationResult) {
	if !q.Type.IsValid() {
		result.add(sectionID, q.ID, "type", "unknown question type %q", q.Type)
		return
	}
	if q.Prompt == "" {
		result.add(sectionID, q.ID, "prompt", "prompt is required")
	}
	if q.Category == "" {
		result.add(sectionID, q.ID, "category", "category is required")
	}
	if q.Weight <= 0 {
		result.add(sectionID, q.ID, "weight", "must be > 0, got %g", q.Weight)
	}

	switch {
	case q.Type.IsScale():
		if q.Scale == nil {
			result.add(sectionID, q.ID, "scale", "scale questions require a scale range")
			return
		}
		if q.Scale.Min >= q.Scale.Max {
			result.add(sectionID, q.ID, "scale", "min %g must be below max %g", q.Scale.Min, q.Scale.Max)
		}
		if q.Scale.Min < 0 || q.Scale.Max > models.MaxOptionValue {
			result.add(sectionID, q.ID, "scale", "range must lie within [0,%g]", models.MaxOptionValue)
		}

	case q.Type.IsChoice():
		if len(q.Options) == 0 {
			result.add(sectionID, q.ID, "options", "choice questions require options")
			return
		}
		optionIDs := make(map[string]bool)
		for _, o := range q.Options {
			if o.ID == "" {
				result.add(sectionID, q.ID, "options.id", "option id is required")
				continue
			}
			if optionIDs[o.ID] {
				result.add(sectionID, q.ID, "options.id", "duplicate option id %q", o.ID)
			}
			optionIDs[o.ID] = true
			if o.Value < 0 || o.Value > models.MaxOptionValue {
				result.add(sectionID, q.ID, "options.value", "option %s value %g outside [0,%g]", o.ID, o.Value, models.MaxOptionValue)
			}
		}
		if q.CorrectAnswer != "" && !optionIDs[q.CorrectAnswer] {
			result.add(sectionID, q.ID, "correct_answer", "references unknown option %q", q.CorrectAnswer)
		}
	}
}
