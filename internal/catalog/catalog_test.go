package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/careerfit/internal/models"
)

func TestDefault(t *testing.T) {
	a := Default()
	require.NotNil(t, a)

	assert.Equal(t, "case-management-expert", a.ID)
	require.Len(t, a.Sections, 3)
	assert.Equal(t, "psychometric", a.Sections[0].ID)
	assert.Equal(t, "technical-aptitude", a.Sections[1].ID)
	assert.Equal(t, "domain-expertise", a.Sections[2].ID)
	assert.Equal(t, 22, a.TotalQuestions())
	assert.Len(t, a.LearningResources, 4)

	// Same pointer on every call
	assert.Same(t, a, Default())
}

func TestDefault_ScaleAnchorsResolve(t *testing.T) {
	q, ok := QuestionByID(Default(), "psych-6")
	require.True(t, ok)
	require.NotNil(t, q.Scale)
	assert.Equal(t, 1.0, q.Scale.Min)
	assert.Equal(t, 5.0, q.Scale.Max)
	assert.Equal(t, "Strongly Agree", q.Scale.MaxLabel)
}

func TestDefault_CoversDimensionCategories(t *testing.T) {
	cats := Categories(Default())
	for _, want := range []string{
		"grit", "growth-mindset", "openness", "technical-knowledge", "domain-knowledge",
		"problem-solving", "analytical-thinking", "case-management-expertise", "stakeholder-management",
	} {
		assert.Contains(t, cats, want)
	}
}

func TestQuestionsInCategory_CrossesSections(t *testing.T) {
	qs := QuestionsInCategory(Default(), "problem-solving")
	require.Len(t, qs, 2)
	assert.Equal(t, "psych-7", qs[0].ID)
	assert.Equal(t, "tech-2", qs[1].ID)
}

func TestSectionOf(t *testing.T) {
	s, ok := SectionOf(Default(), "domain-3")
	require.True(t, ok)
	assert.Equal(t, "domain-expertise", s.ID)

	_, ok = SectionOf(Default(), "nope")
	assert.False(t, ok)
}

const minimalBank = `
id: mini
title: Mini
sections:
  - id: one
    title: One
    questions:
      - id: q1
        type: likert-scale
        prompt: Rate it
        scale: {min: 1, max: 5}
        category: grit
      - id: q2
        type: multiple-choice
        prompt: Pick
        category: openness
        weight: 2
        options:
          - {id: a, text: A, value: 0}
          - {id: b, text: B, value: 5}
`

func TestParse_AppliesDefaults(t *testing.T) {
	a, err := Parse([]byte(minimalBank))
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.Sections[0].Weight, "single unweighted section gets the whole score")
	assert.Equal(t, 1.0, a.Sections[0].Questions[0].Weight, "omitted weight defaults to 1")
	assert.Equal(t, 2.0, a.Sections[0].Questions[1].Weight)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("id: x\nsectons: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse question bank")
}

func TestValidate(t *testing.T) {
	valid := func() *models.Assessment {
		a, err := Parse([]byte(minimalBank))
		require.NoError(t, err)
		return a
	}

	tests := []struct {
		name    string
		mutate  func(a *models.Assessment)
		wantMsg string
	}{
		{
			name:    "duplicate question id",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[1].ID = "q1" },
			wantMsg: "duplicate question id",
		},
		{
			name:    "option value above five",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[1].Options[1].Value = 6 },
			wantMsg: "outside [0,5]",
		},
		{
			name:    "choice without options",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[1].Options = nil },
			wantMsg: "require options",
		},
		{
			name:    "scale without range",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[0].Scale = nil },
			wantMsg: "require a scale range",
		},
		{
			name:    "inverted scale",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[0].Scale = &models.ScaleRange{Min: 5, Max: 1} },
			wantMsg: "must be below max",
		},
		{
			name:    "unknown type",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[0].Type = "essay" },
			wantMsg: "unknown question type",
		},
		{
			name:    "negative weight",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[1].Weight = -1 },
			wantMsg: "must be > 0",
		},
		{
			name:    "section weights do not sum to one",
			mutate:  func(a *models.Assessment) { a.Sections[0].Weight = 0.5 },
			wantMsg: "must sum to 1",
		},
		{
			name:    "correct answer references unknown option",
			mutate:  func(a *models.Assessment) { a.Sections[0].Questions[1].CorrectAnswer = "z" },
			wantMsg: "unknown option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(a)

			err := Validate(a)
			require.Error(t, err)

			var vr *ValidationResult
			require.True(t, errors.As(err, &vr))
			assert.True(t, vr.HasErrors())
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_DefaultBankIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalBank), 0644))

	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mini", a.ID)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	a, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Same(t, Default(), a)
}
