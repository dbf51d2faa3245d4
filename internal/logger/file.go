package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/careerfit/internal/models"
)

// FileLogger writes one timestamped log file per run and keeps a
// latest.log symlink pointing at it.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger opens run-YYYYMMDD-HHMMSS.log in logDir, creating the
// directory if needed, and repoints latest.log at it.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", stamp))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}
	fl.write("=== careerfit run log ===\n")
	fl.write(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))
	return fl, nil
}

// Path returns the current run log file
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// LogSectionScore records the section score and its insights at DEBUG level.
func (fl *FileLogger) LogSectionScore(score models.SectionScore) {
	if !allowed(fl.logLevel, "debug") {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "section %s (%s): %.2f%%", score.SectionID, score.Title, score.Percentage)
	for _, insight := range score.Insights {
		fmt.Fprintf(&sb, "\n    insight: %s", insight)
	}
	fl.logWithLevel("DEBUG", sb.String())
}

// LogRecommendation records the full recommendation at INFO level.
func (fl *FileLogger) LogRecommendation(rec models.Recommendation) {
	if !allowed(fl.logLevel, "info") {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "recommendation: %s (confidence %d%%)", rec.Decision, rec.Confidence)
	for i, step := range rec.NextSteps {
		fmt.Fprintf(&sb, "\n    step %d: %s", i+1, step)
	}
	if len(rec.AlternativePaths) > 0 {
		fmt.Fprintf(&sb, "\n    alternatives: %s", strings.Join(rec.AlternativePaths, ", "))
	}
	fl.logWithLevel("INFO", sb.String())
}

// LogResultSaved logs where a result was stored at INFO level.
func (fl *FileLogger) LogResultSaved(id, location string) {
	fl.logWithLevel("INFO", fmt.Sprintf("saved result %s to %s", id, location))
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !allowed(fl.logLevel, strings.ToLower(level)) {
		return
	}
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}
	return nil
}

func (fl *FileLogger) write(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		fl.runLog.Sync()
	}
}
