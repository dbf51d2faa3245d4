package models

import (
	"fmt"
	"time"
)

// Decision is the recommendation tier. Tiers are ordered: strong > conditional > poor.
type Decision string

// Decision tiers
const (
	DecisionStrongFit      Decision = "strong-fit"
	DecisionConditionalFit Decision = "conditional-fit"
	DecisionPoorFit        Decision = "poor-fit"
)

// Rank returns 3 for strong fit, 2 for conditional fit, 1 for poor fit and 0 otherwise
func (d Decision) Rank() int {
	switch d {
	case DecisionStrongFit:
		return 3
	case DecisionConditionalFit:
		return 2
	case DecisionPoorFit:
		return 1
	}
	return 0
}

// Label returns a human readable form of the decision
func (d Decision) Label() string {
	switch d {
	case DecisionStrongFit:
		return "Strong fit"
	case DecisionConditionalFit:
		return "Conditional fit"
	case DecisionPoorFit:
		return "Poor fit"
	}
	return string(d)
}

// ParseDecision accepts a tier name, or the legacy yes/maybe/no spellings
func ParseDecision(s string) (Decision, error) {
	switch s {
	case string(DecisionStrongFit), "yes":
		return DecisionStrongFit, nil
	case string(DecisionConditionalFit), "maybe":
		return DecisionConditionalFit, nil
	case string(DecisionPoorFit), "no":
		return DecisionPoorFit, nil
	}
	return "", fmt.Errorf("unknown decision %q", s)
}

// SectionScore is the derived score of one structural section
type SectionScore struct {
	SectionID  string   `json:"sectionId"`
	Title      string   `json:"sectionTitle"`
	Score      float64  `json:"score"`
	MaxScore   float64  `json:"maxScore"`
	Percentage float64  `json:"percentage"`
	Insights   []string `json:"insights"`
}

// WISCARScores is the six-dimension readiness profile, each value in [0,100]
type WISCARScores struct {
	Will               float64 `json:"will"`
	Interest           float64 `json:"interest"`
	Skill              float64 `json:"skill"`
	CognitiveReadiness float64 `json:"cognitiveReadiness"`
	AbilityToLearn     float64 `json:"abilityToLearn"`
	RealWorldAlignment float64 `json:"realWorldAlignment"`
	Overall            float64 `json:"overall"`
}

// Recommendation is the categorical outcome with rationale and follow-ups
type Recommendation struct {
	Decision          Decision           `json:"decision"`
	Confidence        int                `json:"confidence"`
	Reasoning         string             `json:"reasoning"`
	NextSteps         []string           `json:"nextSteps"`
	AlternativePaths  []string           `json:"alternativePaths,omitempty"`
	LearningResources []LearningResource `json:"learningResources"`
}

// AssessmentResult is everything the scoring pipeline hands back to its caller
type AssessmentResult struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	AssessmentID   string         `json:"assessmentId"`
	OverallScore   float64        `json:"overallScore"`
	SectionScores  []SectionScore `json:"sectionScores"`
	WISCARScores   WISCARScores   `json:"wiscarScores"`
	Recommendation Recommendation `json:"recommendation"`
	CompletedAt    time.Time      `json:"completedAt"`
	TimeSpent      int64          `json:"timeSpent"` // Seconds
}
