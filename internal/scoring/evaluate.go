package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/careerfit/internal/models"
)

// DefaultUserID is recorded when the caller does not identify the respondent
const DefaultUserID = "anonymous"

// ResponseError describes one response the pipeline refuses to score
type ResponseError struct {
	Index      int
	QuestionID string
	Answer     string
	Message    string
}

func (e ResponseError) Error() string {
	return fmt.Sprintf("response %d (%s = %q): %s", e.Index, e.QuestionID, e.Answer, e.Message)
}

// ValidationResult aggregates every rejected response
type ValidationResult struct {
	Errors []ResponseError
}

// Error returns aggregated error message
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response validation failed with %d error(s):\n", len(r.Errors)))
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if validation found errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ValidateResponses rejects scale answers that are not numeric or fall
// outside the question's declared range. Responses to unknown questions
// and choice answers that match no option are tolerated: the scorer skips
// the former and under-scores the latter.
func ValidateResponses(a *models.Assessment, responses []models.Response) error {
	questions := make(map[string]*models.Question)
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			q := &a.Sections[si].Questions[qi]
			questions[q.ID] = q
		}
	}

	result := &ValidationResult{}
	for i, r := range responses {
		q, ok := questions[r.QuestionID]
		if !ok || !q.Type.IsScale() {
			continue
		}

		v, numeric := r.Answer.Number()
		switch {
		case !numeric:
			result.Errors = append(result.Errors, ResponseError{
				Index: i, QuestionID: r.QuestionID, Answer: r.Answer.String(),
				Message: "scale questions require a numeric answer",
			})
		case q.Scale != nil && !q.Scale.Contains(v):
			result.Errors = append(result.Errors, ResponseError{
				Index: i, QuestionID: r.QuestionID, Answer: r.Answer.String(),
				Message: fmt.Sprintf("answer outside scale range [%g,%g]", q.Scale.Min, q.Scale.Max),
			})
		}
	}

	if result.HasErrors() {
		return result
	}
	return nil
}

// Options carries the caller-owned metadata stamped on a result
type Options struct {
	UserID      string
	CompletedAt time.Time
	TimeSpent   int64 // Seconds
	NewID       func() string
}

// OptionsFromHandoff copies timing metadata out of a handoff record
func OptionsFromHandoff(h *models.Handoff) Options {
	return Options{CompletedAt: h.CompletedAt, TimeSpent: h.TotalTime}
}

// OverallScore weights each section percentage by its section weight
func OverallScore(a *models.Assessment, sections []models.SectionScore) float64 {
	weights := make(map[string]float64, len(a.Sections))
	for _, s := range a.Sections {
		weights[s.ID] = s.Weight
	}

	total := 0.0
	for _, s := range sections {
		w, ok := weights[s.SectionID]
		if !ok || w == 0 {
			w = 1
		}
		total += s.Percentage * w
	}
	return total
}

// ScoreSections scores every section of the bank and attaches its insights
func ScoreSections(a *models.Assessment, responses []models.Response) []models.SectionScore {
	scores := make([]models.SectionScore, 0, len(a.Sections))
	for _, s := range a.Sections {
		score := SectionScore(responses, s.Questions)
		scores = append(scores, models.SectionScore{
			SectionID:  s.ID,
			Title:      s.Title,
			Score:      score,
			MaxScore:   100,
			Percentage: score,
			Insights:   SectionInsights(score, s.ID),
		})
	}
	return scores
}

// Evaluate runs the whole pipeline: validation, section scores, overall
// score, WISCAR profile and recommendation.
func Evaluate(a *models.Assessment, responses []models.Response, opts Options) (*models.AssessmentResult, error) {
	if err := ValidateResponses(a, responses); err != nil {
		return nil, err
	}

	sections := ScoreSections(a, responses)
	overall := OverallScore(a, sections)
	wiscar := CalculateWISCAR(responses, a.AllQuestions())
	rec := RecommendWithResources(overall, wiscar, sections, a.LearningResources)

	userID := opts.UserID
	if userID == "" {
		userID = DefaultUserID
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	completedAt := opts.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	return &models.AssessmentResult{
		ID:             newID(),
		UserID:         userID,
		AssessmentID:   a.ID,
		OverallScore:   overall,
		SectionScores:  sections,
		WISCARScores:   wiscar,
		Recommendation: rec,
		CompletedAt:    completedAt,
		TimeSpent:      opts.TimeSpent,
	}, nil
}
