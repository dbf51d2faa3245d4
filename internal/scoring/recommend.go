package scoring

import (
	"math"

	"github.com/harrison/careerfit/internal/catalog"
	"github.com/harrison/careerfit/internal/models"
)

// Thresholds of the decision rules
const (
	StrongFitOverall      = 75.0
	StrongFitWISCAR       = 70.0
	ConditionalFitOverall = 60.0
	ConditionalFitWISCAR  = 55.0
	RemediationThreshold  = 60.0
	MaxStrongConfidence   = 95.0
)

// Fixed texts of the recommendation engine
const (
	strongReasoning = "Your assessment results indicate strong alignment with case management software expert roles. " +
		"You demonstrate the right combination of technical aptitude, domain understanding, and personal traits needed for success in this field."
	conditionalReasoning = "You show promising potential for case management software roles, but some areas need development. " +
		"With focused learning and practice, you could become successful in this field."
	poorReasoning = "Based on your current assessment, case management software expert roles may not be the best fit. " +
		"However, there are related paths that might align better with your strengths and interests."

	StepSkillFoundation   = "Focus on building technical foundation - databases, workflows, and system integration"
	StepInterestExploring = "Explore case management through introductory courses to build genuine interest"
	StepPracticalExposure = "Gain practical experience through internships or volunteer work with case management systems"
	StepReassess          = "Reassess your fit after 3-6 months of focused development"
)

var strongNextSteps = []string{
	"Begin with foundational case management training",
	"Pursue Salesforce Service Cloud or similar platform certification",
	"Start a hands-on project building a simple case tracking system",
	"Join case management professional communities and forums",
}

var poorNextSteps = []string{
	"Explore the alternative career paths suggested below",
	"Consider foundational IT or business analysis courses",
	"Retake this assessment after gaining more experience",
}

// Alternative career paths offered with a poor fit
var (
	TechnicalAlternatives = []string{"Technical Support Specialist", "Database Administrator", "Business Intelligence Analyst"}
	PeopleAlternatives    = []string{"Customer Success Manager", "Business Analyst", "Project Coordinator"}
	GeneralAlternatives   = []string{"General IT Support", "Administrative Systems Coordinator", "Data Entry Specialist"}
)

// remediations lists, in order, the dimensions that earn a targeted step
// in a conditional fit when they fall below RemediationThreshold.
var remediations = []struct {
	dimension Dimension
	step      string
}{
	{DimensionSkill, StepSkillFoundation},
	{DimensionInterest, StepInterestExploring},
	{DimensionRealWorldAlignment, StepPracticalExposure},
}

// outcome is what a matching rule contributes before rounding and resources
type outcome struct {
	confidence   float64
	reasoning    string
	nextSteps    []string
	alternatives []string
}

// DecisionRule pairs a guard with the recommendation it produces
type DecisionRule struct {
	Decision models.Decision
	Applies  func(overall float64, w models.WISCARScores) bool
	build    func(overall float64, w models.WISCARScores) outcome
}

// DecisionRules are evaluated in order; the first rule that applies wins.
// The last rule always applies.
var DecisionRules = []DecisionRule{
	{
		Decision: models.DecisionStrongFit,
		Applies: func(overall float64, w models.WISCARScores) bool {
			return overall >= StrongFitOverall && w.Overall >= StrongFitWISCAR
		},
		build: func(overall float64, w models.WISCARScores) outcome {
			return outcome{
				confidence: math.Min(MaxStrongConfidence, mean(overall, w.Overall)),
				reasoning:  strongReasoning,
				nextSteps:  append([]string(nil), strongNextSteps...),
			}
		},
	},
	{
		Decision: models.DecisionConditionalFit,
		Applies: func(overall float64, w models.WISCARScores) bool {
			return overall >= ConditionalFitOverall && w.Overall >= ConditionalFitWISCAR
		},
		build: func(overall float64, w models.WISCARScores) outcome {
			steps := []string{}
			for _, r := range remediations {
				if DimensionValue(w, r.dimension) < RemediationThreshold {
					steps = append(steps, r.step)
				}
			}
			steps = append(steps, StepReassess)
			return outcome{
				confidence: mean(overall, w.Overall),
				reasoning:  conditionalReasoning,
				nextSteps:  steps,
			}
		},
	},
	{
		Decision: models.DecisionPoorFit,
		Applies:  func(float64, models.WISCARScores) bool { return true },
		build: func(overall float64, w models.WISCARScores) outcome {
			// Not floor-clamped: inputs above 100 yield a negative confidence.
			return outcome{
				confidence:   100 - mean(overall, w.Overall),
				reasoning:    poorReasoning,
				nextSteps:    append([]string(nil), poorNextSteps...),
				alternatives: AlternativePaths(w),
			}
		},
	},
}

// AlternativePaths picks the poor-fit suggestions by comparing skill with interest
func AlternativePaths(w models.WISCARScores) []string {
	switch {
	case w.Skill > w.Interest:
		return append([]string(nil), TechnicalAlternatives...)
	case w.Interest > w.Skill:
		return append([]string(nil), PeopleAlternatives...)
	default:
		return append([]string(nil), GeneralAlternatives...)
	}
}

// Decide returns the tier of the first rule that applies
func Decide(overall float64, w models.WISCARScores) models.Decision {
	return matchRule(overall, w).Decision
}

// Recommend maps the overall score and dimension profile to a recommendation,
// attaching the default bank's learning resources.
func Recommend(overall float64, w models.WISCARScores, sections []models.SectionScore) models.Recommendation {
	return RecommendWithResources(overall, w, sections, catalog.Default().LearningResources)
}

// RecommendWithResources is Recommend with an explicit resource list.
// Section scores are accepted for future use and do not affect the outcome.
func RecommendWithResources(overall float64, w models.WISCARScores, _ []models.SectionScore, resources []models.LearningResource) models.Recommendation {
	rule := matchRule(overall, w)
	out := rule.build(overall, w)

	rec := models.Recommendation{
		Decision:          rule.Decision,
		Confidence:        int(math.Round(out.confidence)),
		Reasoning:         out.reasoning,
		NextSteps:         out.nextSteps,
		LearningResources: append([]models.LearningResource(nil), resources...),
	}
	if len(out.alternatives) > 0 {
		rec.AlternativePaths = out.alternatives
	}
	return rec
}

func matchRule(overall float64, w models.WISCARScores) DecisionRule {
	for _, r := range DecisionRules {
		if r.Applies(overall, w) {
			return r
		}
	}
	return DecisionRules[len(DecisionRules)-1]
}

func mean(a, b float64) float64 {
	return (a + b) / 2
}
