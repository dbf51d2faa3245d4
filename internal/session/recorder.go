// Package session walks a respondent through the question bank one
// question at a time and produces the handoff record the scorer reads.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harrison/careerfit/internal/models"
)

var (
	// ErrFinished is returned when answering after the last question
	ErrFinished = errors.New("assessment already finished")
	// ErrInvalidAnswer is returned when an answer does not fit the current question
	ErrInvalidAnswer = errors.New("invalid answer")
)

// step locates one question in the bank
type step struct {
	section  int
	question *models.Question
}

// Recorder keeps the ordered responses of an in-flight assessment.
// It is not safe for concurrent use.
type Recorder struct {
	assessment *models.Assessment
	steps      []step
	responses  []models.Response
	started    time.Time
}

// NewRecorder starts a session over the answerable questions of a, in bank
// order. Ranking questions are skipped: they carry no score.
func NewRecorder(a *models.Assessment, started time.Time) *Recorder {
	r := &Recorder{assessment: a, started: started}
	for si := range a.Sections {
		for qi := range a.Sections[si].Questions {
			q := &a.Sections[si].Questions[qi]
			if !answerable(q) {
				continue
			}
			r.steps = append(r.steps, step{section: si, question: q})
		}
	}
	return r
}

func answerable(q *models.Question) bool {
	return q.Type.IsScale() || q.Type.IsChoice()
}

// Current returns the question awaiting an answer and its section.
// ok is false once every question has been answered.
func (r *Recorder) Current() (q *models.Question, s *models.Section, ok bool) {
	if r.Done() {
		return nil, nil, false
	}
	st := r.steps[len(r.responses)]
	return st.question, &r.assessment.Sections[st.section], true
}

// Answer records an answer to the current question and advances.
// Scale answers must be numeric and inside the scale; choice answers must
// name an existing option.
func (r *Recorder) Answer(a models.Answer, timeSpent float64) error {
	q, _, ok := r.Current()
	if !ok {
		return ErrFinished
	}
	if err := check(q, a); err != nil {
		return err
	}

	r.responses = append(r.responses, models.Response{
		QuestionID: q.ID,
		Answer:     a,
		TimeSpent:  timeSpent,
	})
	return nil
}

// Back drops the most recent response so its question is asked again.
// Reports false at the first question.
func (r *Recorder) Back() bool {
	if len(r.responses) == 0 {
		return false
	}
	r.responses = r.responses[:len(r.responses)-1]
	return true
}

// Done reports whether every question has been answered
func (r *Recorder) Done() bool {
	return len(r.responses) >= len(r.steps)
}

// Responses returns a copy of the responses recorded so far
func (r *Recorder) Responses() []models.Response {
	return append([]models.Response(nil), r.responses...)
}

// Progress reports position and completion at now
func (r *Recorder) Progress(now time.Time) models.Progress {
	total := len(r.steps)
	p := models.Progress{
		TotalQuestions:     total,
		CompletedQuestions: len(r.responses),
		TimeSpent:          elapsed(r.started, now),
	}
	if total > 0 {
		p.Percentage = float64(len(r.responses)) / float64(total) * 100
	}

	idx := len(r.responses)
	if idx >= total {
		idx = total - 1
	}
	if idx >= 0 {
		p.CurrentSection = r.steps[idx].section + 1
		p.CurrentQuestion = idx + 1
	}
	return p
}

// Handoff packages the responses for scoring, stamped with now
func (r *Recorder) Handoff(now time.Time) *models.Handoff {
	return &models.Handoff{
		Responses:   r.Responses(),
		TotalTime:   elapsed(r.started, now),
		CompletedAt: now.UTC(),
	}
}

func check(q *models.Question, a models.Answer) error {
	switch {
	case q.Type.IsScale():
		v, ok := a.Number()
		if !ok {
			return fmt.Errorf("%w: %s expects a number", ErrInvalidAnswer, q.ID)
		}
		if q.Scale != nil && !q.Scale.Contains(v) {
			return fmt.Errorf("%w: %s expects a value from %g to %g", ErrInvalidAnswer, q.ID, q.Scale.Min, q.Scale.Max)
		}
	case q.Type.IsChoice():
		id, ok := a.Choice()
		if !ok || q.FindOption(id) == nil {
			return fmt.Errorf("%w: %s expects one of %s", ErrInvalidAnswer, q.ID, optionList(q))
		}
	default:
		return fmt.Errorf("%w: %s questions cannot be answered", ErrInvalidAnswer, q.Type)
	}
	return nil
}

func optionList(q *models.Question) string {
	ids := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		ids = append(ids, o.ID)
	}
	return strings.Join(ids, ", ")
}

func elapsed(from, to time.Time) int64 {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
