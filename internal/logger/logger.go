// Package logger provides leveled logging for careerfit commands.
//
// Console and file loggers share the same level filtering and the same
// domain events: section scores, the final recommendation and saved results.
// Implementations are safe for concurrent use.
package logger

import (
	"strings"
	"time"

	"github.com/harrison/careerfit/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is what commands log through
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogSectionScore(score models.SectionScore)
	LogRecommendation(rec models.Recommendation)
	LogResultSaved(id, location string)
}

// normalizeLogLevel lowercases a level name; empty or unknown names become "info".
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func allowed(configured, message string) bool {
	return logLevelToInt(message) >= logLevelToInt(configured)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// MultiLogger fans every call out to several loggers
type MultiLogger []Logger

// LogTrace implements Logger
func (m MultiLogger) LogTrace(message string) {
	for _, l := range m {
		l.LogTrace(message)
	}
}

// LogDebug implements Logger
func (m MultiLogger) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

// LogInfo implements Logger
func (m MultiLogger) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

// LogWarn implements Logger
func (m MultiLogger) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

// LogError implements Logger
func (m MultiLogger) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}

// LogSectionScore implements Logger
func (m MultiLogger) LogSectionScore(score models.SectionScore) {
	for _, l := range m {
		l.LogSectionScore(score)
	}
}

// LogRecommendation implements Logger
func (m MultiLogger) LogRecommendation(rec models.Recommendation) {
	for _, l := range m {
		l.LogRecommendation(rec)
	}
}

// LogResultSaved implements Logger
func (m MultiLogger) LogResultSaved(id, location string) {
	for _, l := range m {
		l.LogResultSaved(id, location)
	}
}

// NoOpLogger discards everything. Used in tests and when logging is off.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(string)                         {}
func (n *NoOpLogger) LogDebug(string)                         {}
func (n *NoOpLogger) LogInfo(string)                          {}
func (n *NoOpLogger) LogWarn(string)                          {}
func (n *NoOpLogger) LogError(string)                         {}
func (n *NoOpLogger) LogSectionScore(models.SectionScore)     {}
func (n *NoOpLogger) LogRecommendation(models.Recommendation) {}
func (n *NoOpLogger) LogResultSaved(string, string)           {}
