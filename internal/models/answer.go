package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Answer holds either a numeric scale point or a selected option id.
// It encodes as a bare number or a bare string in JSON and YAML.
type Answer struct {
	number  float64
	choice  string
	numeric bool
	set     bool
}

// NumberAnswer builds an answer for a scale question
func NumberAnswer(v float64) Answer {
	return Answer{number: v, numeric: true, set: true}
}

// ChoiceAnswer builds an answer selecting an option by id
func ChoiceAnswer(optionID string) Answer {
	return Answer{choice: optionID, set: true}
}

// Number returns the numeric value and whether the answer is numeric
func (a Answer) Number() (float64, bool) {
	return a.number, a.numeric
}

// Choice returns the option id and whether the answer is a choice
func (a Answer) Choice() (string, bool) {
	return a.choice, a.set && !a.numeric
}

// IsZero reports whether no answer was given
func (a Answer) IsZero() bool {
	return !a.set
}

func (a Answer) String() string {
	switch {
	case !a.set:
		return ""
	case a.numeric:
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	default:
		return a.choice
	}
}

// MarshalJSON encodes the answer as a JSON number or string
func (a Answer) MarshalJSON() ([]byte, error) {
	switch {
	case !a.set:
		return []byte("null"), nil
	case a.numeric:
		return json.Marshal(a.number)
	default:
		return json.Marshal(a.choice)
	}
}

// UnmarshalJSON accepts a JSON number, string or null
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode answer: %w", err)
		}
		*a = ChoiceAnswer(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unsupported answer %s: must be a number or an option id", string(data))
	}
	*a = NumberAnswer(f)
	return nil
}

// MarshalYAML encodes the answer as a YAML scalar
func (a Answer) MarshalYAML() (interface{}, error) {
	switch {
	case !a.set:
		return nil, nil
	case a.numeric:
		return a.number, nil
	default:
		return a.choice, nil
	}
}

// UnmarshalYAML accepts an int/float scalar as a number and anything else as an option id
func (a *Answer) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: answer must be a scalar", value.Line)
	}

	switch value.Tag {
	case "!!null":
		*a = Answer{}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid numeric answer %q: %w", value.Line, value.Value, err)
		}
		*a = NumberAnswer(f)
	default:
		*a = ChoiceAnswer(value.Value)
	}
	return nil
}

// Response is one answered question collected by the caller
type Response struct {
	QuestionID string  `json:"questionId" yaml:"question_id"`
	Answer     Answer  `json:"answer" yaml:"answer"`
	TimeSpent  float64 `json:"timeSpent" yaml:"time_spent"` // Seconds
}
