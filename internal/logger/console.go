package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/harrison/careerfit/internal/models"
)

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Color is used only when the writer is a terminal stdout or stderr.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive); anything else means info.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is os.Stdout or os.Stderr and color is not
// disabled (no TTY or NO_COLOR set).
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// Level returns the normalized level
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogSectionScore logs one scored section at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] section <id>: <score>%"
func (cl *ConsoleLogger) LogSectionScore(score models.SectionScore) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("section %s: %.1f%%", score.SectionID, score.Percentage))
}

// LogRecommendation logs the decision at INFO level, colored by tier on a terminal.
// Format: "[HH:MM:SS] [INFO] recommendation: <decision> (confidence <n>%)"
func (cl *ConsoleLogger) LogRecommendation(rec models.Recommendation) {
	label := string(rec.Decision)
	if cl.colorOutput {
		switch rec.Decision {
		case models.DecisionStrongFit:
			label = color.New(color.FgGreen, color.Bold).Sprint(label)
		case models.DecisionConditionalFit:
			label = color.New(color.FgYellow, color.Bold).Sprint(label)
		default:
			label = color.New(color.FgRed, color.Bold).Sprint(label)
		}
	}
	cl.logWithLevel("INFO", fmt.Sprintf("recommendation: %s (confidence %d%%)", label, rec.Confidence))
}

// LogResultSaved logs where a result was stored at INFO level.
func (cl *ConsoleLogger) LogResultSaved(id, location string) {
	cl.logWithLevel("INFO", fmt.Sprintf("saved result %s to %s", id, location))
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !allowed(cl.logLevel, strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	if cl.colorOutput {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, levelColor(level).Sprint(level), message)
		return
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, level, message)
}

func levelColor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "INFO":
		return color.New(color.FgBlue)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR":
		return color.New(color.FgRed)
	}
	return color.New(color.Reset)
}
