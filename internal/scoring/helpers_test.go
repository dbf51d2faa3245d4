package scoring

import (
	"github.com/harrison/careerfit/internal/catalog"
	"github.com/harrison/careerfit/internal/models"
)

func likert(id, category string, weight float64) models.Question {
	return models.Question{
		ID:       id,
		Type:     models.QuestionLikert,
		Prompt:   id,
		Scale:    &models.ScaleRange{Min: 1, Max: 5},
		Category: category,
		Weight:   weight,
	}
}

func choice(id, category string, weight float64, values ...float64) models.Question {
	q := models.Question{
		ID:       id,
		Type:     models.QuestionChoice,
		Prompt:   id,
		Category: category,
		Weight:   weight,
	}
	for i, v := range values {
		q.Options = append(q.Options, models.Option{ID: string(rune('a' + i)), Text: "option", Value: v})
	}
	return q
}

func num(id string, v float64) models.Response {
	return models.Response{QuestionID: id, Answer: models.NumberAnswer(v)}
}

func pick(id, option string) models.Response {
	return models.Response{QuestionID: id, Answer: models.ChoiceAnswer(option)}
}

// answerAll answers every question of the default bank with best or worst picks
func answerAll(best bool) []models.Response {
	var out []models.Response
	for _, q := range catalog.Default().AllQuestions() {
		if q.Type.IsScale() {
			v := q.Scale.Min
			if best {
				v = q.Scale.Max
			}
			out = append(out, num(q.ID, v))
			continue
		}

		chosen := q.Options[0]
		for _, o := range q.Options[1:] {
			if (best && o.Value > chosen.Value) || (!best && o.Value < chosen.Value) {
				chosen = o
			}
		}
		out = append(out, pick(q.ID, chosen.ID))
	}
	return out
}

// answerMixed gives middling scale answers and always picks the first option
func answerMixed() []models.Response {
	var out []models.Response
	for _, q := range catalog.Default().AllQuestions() {
		if q.Type.IsScale() {
			out = append(out, num(q.ID, 3))
		} else {
			out = append(out, pick(q.ID, q.Options[0].ID))
		}
	}
	return out
}

func profile(overall float64) models.WISCARScores {
	return models.WISCARScores{
		Will: overall, Interest: overall, Skill: overall,
		CognitiveReadiness: overall, AbilityToLearn: overall, RealWorldAlignment: overall,
		Overall: overall,
	}
}
