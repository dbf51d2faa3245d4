package scoring

import "github.com/harrison/careerfit/internal/models"

// Dimension names one WISCAR axis
type Dimension string

// WISCAR dimensions
const (
	DimensionWill               Dimension = "will"
	DimensionInterest           Dimension = "interest"
	DimensionSkill              Dimension = "skill"
	DimensionCognitiveReadiness Dimension = "cognitiveReadiness"
	DimensionAbilityToLearn     Dimension = "abilityToLearn"
	DimensionRealWorldAlignment Dimension = "realWorldAlignment"
)

// DimensionMapping lists the category tags averaged into one dimension
type DimensionMapping struct {
	Dimension  Dimension
	Label      string
	Categories []string
}

// DimensionTable maps every dimension to its categories, in report order.
// Categories are matched across the whole bank, not by section.
var DimensionTable = []DimensionMapping{
	{Dimension: DimensionWill, Label: "Will", Categories: []string{"grit", "growth-mindset"}},
	{Dimension: DimensionInterest, Label: "Interest", Categories: []string{"openness"}},
	{Dimension: DimensionSkill, Label: "Skill", Categories: []string{"technical-knowledge", "domain-knowledge"}},
	{Dimension: DimensionCognitiveReadiness, Label: "Cognitive Readiness", Categories: []string{"problem-solving", "analytical-thinking"}},
	{Dimension: DimensionAbilityToLearn, Label: "Ability to Learn", Categories: []string{"growth-mindset"}},
	{Dimension: DimensionRealWorldAlignment, Label: "Real-World Alignment", Categories: []string{"case-management-expertise", "stakeholder-management"}},
}

// CategoryScore runs SectionScore over every question tagged category
// and the responses that answer those questions.
func CategoryScore(responses []models.Response, questions []models.Question, category string) float64 {
	var inCategory []models.Question
	ids := make(map[string]bool)
	for _, q := range questions {
		if q.Category == category {
			inCategory = append(inCategory, q)
			ids[q.ID] = true
		}
	}

	var matching []models.Response
	for _, r := range responses {
		if ids[r.QuestionID] {
			matching = append(matching, r)
		}
	}

	return SectionScore(matching, inCategory)
}

// DimensionScore averages the category scores of one mapping, unclamped
func DimensionScore(responses []models.Response, questions []models.Question, m DimensionMapping) float64 {
	if len(m.Categories) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range m.Categories {
		sum += CategoryScore(responses, questions, c)
	}
	return sum / float64(len(m.Categories))
}

// CalculateWISCAR builds the dimension profile from the full question list.
// Overall is the mean of the six raw dimensions; every value is clamped to [0,100].
func CalculateWISCAR(responses []models.Response, questions []models.Question) models.WISCARScores {
	raw := make(map[Dimension]float64, len(DimensionTable))
	total := 0.0
	for _, m := range DimensionTable {
		v := DimensionScore(responses, questions, m)
		raw[m.Dimension] = v
		total += v
	}

	return models.WISCARScores{
		Will:               clampPercent(raw[DimensionWill]),
		Interest:           clampPercent(raw[DimensionInterest]),
		Skill:              clampPercent(raw[DimensionSkill]),
		CognitiveReadiness: clampPercent(raw[DimensionCognitiveReadiness]),
		AbilityToLearn:     clampPercent(raw[DimensionAbilityToLearn]),
		RealWorldAlignment: clampPercent(raw[DimensionRealWorldAlignment]),
		Overall:            clampPercent(total / float64(len(DimensionTable))),
	}
}

// DimensionValue reads one dimension out of a profile
func DimensionValue(w models.WISCARScores, d Dimension) float64 {
	switch d {
	case DimensionWill:
		return w.Will
	case DimensionInterest:
		return w.Interest
	case DimensionSkill:
		return w.Skill
	case DimensionCognitiveReadiness:
		return w.CognitiveReadiness
	case DimensionAbilityToLearn:
		return w.AbilityToLearn
	case DimensionRealWorldAlignment:
		return w.RealWorldAlignment
	}
	return 0
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
