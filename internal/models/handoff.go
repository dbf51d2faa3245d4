package models

import "time"

// Handoff is the record passed from the quiz session to the scorer.
// JSON field names are camelCase so exported quiz records load unchanged;
// YAML uses snake_case like the question bank.
type Handoff struct {
	Responses   []Response `json:"responses" yaml:"responses"`
	TotalTime   int64      `json:"totalTime" yaml:"total_time"` // Seconds
	CompletedAt time.Time  `json:"completedAt" yaml:"completed_at"`
}

// Progress is a point-in-time view of an in-flight session
type Progress struct {
	CurrentSection     int     `json:"currentSection"`  // 1-based
	CurrentQuestion    int     `json:"currentQuestion"` // 1-based, across all sections
	TotalQuestions     int     `json:"totalQuestions"`
	CompletedQuestions int     `json:"completedQuestions"`
	Percentage         float64 `json:"percentage"`
	TimeSpent          int64   `json:"timeSpent"` // Seconds
}
