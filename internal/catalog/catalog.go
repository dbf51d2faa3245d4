// Package catalog loads the static question bank the scorer reads from.
//
// The default bank is embedded YAML and is decoded exactly once. Custom
// banks can be loaded from disk with Load; every bank passes through
// Validate before it is handed out, so callers never see a malformed one.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/harrison/careerfit/internal/models"
)

//go:embed data/case_management.yaml
var defaultBank []byte

var (
	defaultOnce       sync.Once
	defaultAssessment *models.Assessment
	defaultErr        error
)

// Default returns the built-in case management assessment.
// It panics if the embedded bank is invalid, which is a build defect.
func Default() *models.Assessment {
	defaultOnce.Do(func() {
		defaultAssessment, defaultErr = Parse(defaultBank)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded question bank is invalid: %v", defaultErr))
	}
	return defaultAssessment
}

// Load reads, decodes and validates a question bank from a YAML file
func Load(path string) (*models.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// LoadOrDefault loads path when it is non-empty and falls back to Default otherwise
func LoadOrDefault(path string) (*models.Assessment, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes YAML into an assessment, applies defaults and validates it
func Parse(data []byte) (*models.Assessment, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var a models.Assessment
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	applyDefaults(&a)

	if err := Validate(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// applyDefaults fills omitted question weights with 1 and, when no section
// declares a weight, splits the overall score evenly between sections.
func applyDefaults(a *models.Assessment) {
	anySectionWeight := false
	for si := range a.Sections {
		s := &a.Sections[si]
		if s.Weight != 0 {
			anySectionWeight = true
		}
		for qi := range s.Questions {
			if s.Questions[qi].Weight == 0 {
				s.Questions[qi].Weight = 1
			}
		}
	}

	if !anySectionWeight && len(a.Sections) > 0 {
		share := 1.0 / float64(len(a.Sections))
		for si := range a.Sections {
			a.Sections[si].Weight = share
		}
	}
}

// QuestionByID finds a question anywhere in the assessment
func QuestionByID(a *models.Assessment, id string) (*models.Question, bool) {
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			if a.Sections[si].Questions[qi].ID == id {
				return &a.Sections[si].Questions[qi], true
			}
		}
	}
	return nil, false
}

// SectionOf returns the section that owns the question id
func SectionOf(a *models.Assessment, questionID string) (*models.Section, bool) {
	for si := range a.Sections {
		for _, q := range a.Sections[si].Questions {
			if q.ID == questionID {
				return &a.Sections[si], true
			}
		}
	}
	return nil, false
}

// SectionByID finds a section by id
func SectionByID(a *models.Assessment, id string) (*models.Section, bool) {
	for si := range a.Sections {
		if a.Sections[si].ID == id {
			return &a.Sections[si], true
		}
	}
	return nil, false
}

// Categories lists the distinct category tags used by the bank, sorted
func Categories(a *models.Assessment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range a.AllQuestions() {
		if q.Category != "" && !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	sort.Strings(out)
	return out
}

// QuestionsInCategory returns every question tagged with category, in bank order
func QuestionsInCategory(a *models.Assessment, category string) []models.Question {
	var out []models.Question
	for _, q := range a.AllQuestions() {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}
