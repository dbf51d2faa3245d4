// Package scoring turns a finished set of responses into section scores,
// a WISCAR dimension profile and a fit recommendation.
//
// Every function in this package is pure: results depend only on the
// arguments, nothing is cached between calls, and inputs are never
// modified. Scoring two response sets concurrently is safe.
package scoring

import "github.com/harrison/careerfit/internal/models"

// SectionScore reduces responses to a 0-100 percentage against questions.
//
// Each response whose question is in questions adds 5*weight to the
// possible total. Scale answers earn answer*weight; choice and scenario
// answers earn option.value*weight when the option id matches and nothing
// otherwise. Responses for questions outside the set are ignored, and a
// question answered twice is counted twice. Scale answers are not clamped
// here; see ValidateResponses. Returns 0 when nothing matched.
func SectionScore(responses []models.Response, questions []models.Question) float64 {
	index := make(map[string]*models.Question, len(questions))
	for i := range questions {
		index[questions[i].ID] = &questions[i]
	}

	var earned, possible float64
	for _, r := range responses {
		q, ok := index[r.QuestionID]
		if !ok {
			continue
		}
		possible += models.MaxOptionValue * q.Weight
		earned += earnedPoints(q, r.Answer) * q.Weight
	}

	if possible == 0 {
		return 0
	}
	return earned / possible * 100
}

// earnedPoints returns the unweighted points an answer is worth
func earnedPoints(q *models.Question, a models.Answer) float64 {
	switch {
	case q.Type.IsScale():
		if v, ok := a.Number(); ok {
			return v
		}
	case q.Type.IsChoice():
		if id, ok := a.Choice(); ok {
			if opt := q.FindOption(id); opt != nil {
				return opt.Value
			}
		}
	}
	return 0
}
