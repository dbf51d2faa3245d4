// Package history keeps scored assessments in a local SQLite database so
// respondents can compare attempts over time.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/careerfit/internal/models"
)

// ErrNotFound is returned by Get for an unknown result id
var ErrNotFound = errors.New("result not found")

// DefaultFile is the database file name inside the careerfit home directory
const DefaultFile = "history.db"

// Summary is the listing view of one stored result
type Summary struct {
	ID            string
	UserID        string
	AssessmentID  string
	OverallScore  float64
	WISCAROverall float64
	Decision      models.Decision
	Confidence    int
	CompletedAt   time.Time
	TimeSpent     int64
}

// Stats aggregates every stored result
type Stats struct {
	Total          int
	AverageOverall float64
	AverageWISCAR  float64
	BestOverall    float64
	Decisions      map[models.Decision]int
	LastCompleted  time.Time
}

// Store manages the results database
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the database at dbPath and applies
// migrations. ":memory:" opens a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // Must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.ApplyMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// execWithRetry retries statements that fail with "database is locked",
// backing off exponentially from baseDelay.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
		lastErr = err
		time.Sleep(baseDelay * time.Duration(1<<attempt))
	}
	return lastErr
}

// Path returns the database path the store was opened with
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a result. Recording the same id twice replaces the row.
func (s *Store) Record(ctx context.Context, r *models.AssessmentResult) error {
	if r.ID == "" {
		return errors.New("record result: missing id")
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := `INSERT OR REPLACE INTO results
		(id, user_id, assessment_id, overall_score, wiscar_overall, decision, confidence, completed_at, time_spent, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		r.ID,
		r.UserID,
		r.AssessmentID,
		r.OverallScore,
		r.WISCARScores.Overall,
		string(r.Recommendation.Decision),
		r.Recommendation.Confidence,
		r.CompletedAt.UTC(),
		r.TimeSpent,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Get returns the full stored result
func (s *Store) Get(ctx context.Context, id string) (*models.AssessmentResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}

	var r models.AssessmentResult
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("unmarshal result %s: %w", id, err)
	}
	return &r, nil
}

// List returns up to limit results, most recent first. limit <= 0 lists everything.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	query := `SELECT id, user_id, assessment_id, overall_score, wiscar_overall, decision, confidence, completed_at, time_spent
		FROM results ORDER BY completed_at DESC, id ASC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var decision string
		if err := rows.Scan(&sum.ID, &sum.UserID, &sum.AssessmentID, &sum.OverallScore,
			&sum.WISCAROverall, &decision, &sum.Confidence, &sum.CompletedAt, &sum.TimeSpent); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		sum.Decision = models.Decision(decision)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

// DecisionCounts returns how many stored results reached each decision
func (s *Store) DecisionCounts(ctx context.Context) (map[models.Decision]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT decision, COUNT(*) FROM results GROUP BY decision`)
	if err != nil {
		return nil, fmt.Errorf("query decision counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Decision]int)
	for rows.Next() {
		var decision string
		var n int
		if err := rows.Scan(&decision, &n); err != nil {
			return nil, fmt.Errorf("scan decision count: %w", err)
		}
		counts[models.Decision(decision)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decision counts: %w", err)
	}
	return counts, nil
}

// Stats summarizes the whole history
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	var avgOverall, avgWISCAR, best sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(overall_score), AVG(wiscar_overall), MAX(overall_score) FROM results`,
	).Scan(&st.Total, &avgOverall, &avgWISCAR, &best)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	st.AverageOverall = avgOverall.Float64
	st.AverageWISCAR = avgWISCAR.Float64
	st.BestOverall = best.Float64

	if st.Total > 0 {
		recent, err := s.List(ctx, 1)
		if err != nil {
			return nil, err
		}
		st.LastCompleted = recent[0].CompletedAt
	}

	st.Decisions, err = s.DecisionCounts(ctx)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Cleanup removes results completed more than keepDays ago and returns
// how many were deleted. keepDays <= 0 keeps everything.
func (s *Store) Cleanup(ctx context.Context, keepDays int) (int64, error) {
	if keepDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -keepDays)
	result, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE completed_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old results: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}
