// Package models defines the question bank, answers and scored results
// shared by the session, scoring and reporting packages.
package models

// QuestionType identifies how a question is answered and scored
type QuestionType string

// Question types. Ranking is accepted by the catalog but never scored.
const (
	QuestionLikert   QuestionType = "likert-scale"
	QuestionChoice   QuestionType = "multiple-choice"
	QuestionScenario QuestionType = "scenario"
	QuestionRanking  QuestionType = "ranking"
)

// MaxOptionValue is the highest value an option or scale point can carry.
const MaxOptionValue = 5.0

// IsValid reports whether t is one of the declared question types
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionLikert, QuestionChoice, QuestionScenario, QuestionRanking:
		return true
	}
	return false
}

// IsScale reports whether answers to this type are numeric scale points
func (t QuestionType) IsScale() bool {
	return t == QuestionLikert
}

// IsChoice reports whether answers to this type select an option by id
func (t QuestionType) IsChoice() bool {
	return t == QuestionChoice || t == QuestionScenario
}

// Option is a selectable answer belonging to exactly one question
type Option struct {
	ID    string  `yaml:"id" json:"id"`
	Text  string  `yaml:"text" json:"text"`
	Value float64 `yaml:"value" json:"value"` // Scored quality, 0-5
}

// ScaleRange describes the numeric range of a Likert question
type ScaleRange struct {
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	MinLabel string  `yaml:"min_label" json:"minLabel"`
	MaxLabel string  `yaml:"max_label" json:"maxLabel"`
}

// Contains reports whether v lies inside the inclusive range
func (r ScaleRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Question is a single immutable item of the question bank
type Question struct {
	ID            string       `yaml:"id" json:"id"`
	Type          QuestionType `yaml:"type" json:"type"`
	Prompt        string       `yaml:"prompt" json:"question"`
	Options       []Option     `yaml:"options,omitempty" json:"options,omitempty"`
	Scale         *ScaleRange  `yaml:"scale,omitempty" json:"scaleRange,omitempty"`
	CorrectAnswer string       `yaml:"correct_answer,omitempty" json:"correctAnswer,omitempty"`
	Category      string       `yaml:"category" json:"category"`
	Weight        float64      `yaml:"weight" json:"weight"`
}

// FindOption returns the option with the given id, or nil
func (q *Question) FindOption(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// Section is a structural group of questions shown together
type Section struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Weight      float64    `yaml:"weight" json:"weight"` // Share of the overall score
	Questions   []Question `yaml:"questions" json:"questions"`
}

// Resource types and difficulties used by LearningResource
const (
	ResourceCourse        = "course"
	ResourceCertification = "certification"
	ResourceBook          = "book"
	ResourceProject       = "project"
	ResourcePractice      = "practice"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// LearningResource is a static study suggestion attached to every recommendation
type LearningResource struct {
	Title       string `yaml:"title" json:"title"`
	Type        string `yaml:"type" json:"type"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Description string `yaml:"description" json:"description"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
}

// Assessment is the full question bank for one instrument
type Assessment struct {
	ID                string             `yaml:"id" json:"id"`
	Title             string             `yaml:"title" json:"title"`
	Description       string             `yaml:"description" json:"description"`
	EstimatedMinutes  int                `yaml:"estimated_minutes" json:"estimatedTime"`
	Sections          []Section          `yaml:"sections" json:"sections"`
	LearningResources []LearningResource `yaml:"learning_resources" json:"learningResources"`
}

// TotalQuestions counts the questions across all sections
func (a *Assessment) TotalQuestions() int {
	n := 0
	for _, s := range a.Sections {
		n += len(s.Questions)
	}
	return n
}

// AllQuestions flattens the sections into one ordered slice
func (a *Assessment) AllQuestions() []Question {
	out := make([]Question, 0, a.TotalQuestions())
	for _, s := range a.Sections {
		out = append(out, s.Questions...)
	}
	return out
}
