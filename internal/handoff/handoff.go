// Package handoff persists the record a finished quiz session passes to the
// scorer. Writes are atomic and guarded by a sidecar lock file, so a
// scorer never reads a half-written record.
package handoff

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/careerfit/internal/filelock"
	"github.com/harrison/careerfit/internal/models"
)

var (
	// ErrNoData means no assessment has been completed since the last reset
	ErrNoData = errors.New("no assessment data found")
	// ErrCorrupt means the stored record could not be decoded
	ErrCorrupt = errors.New("assessment data is corrupt")
)

// DefaultFile is the handoff file name inside the careerfit home directory
const DefaultFile = "assessment.json"

// Store reads and writes one handoff record at Path
type Store struct {
	Path string
}

// NewStore returns a store backed by path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Save replaces the stored record. Paths ending in .yaml or .yml are
// written as YAML, anything else as JSON.
func (s *Store) Save(h *models.Handoff) error {
	var data []byte
	var err error
	if isYAML(s.Path) {
		data, err = yaml.Marshal(h)
	} else {
		data, err = json.MarshalIndent(h, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode handoff: %w", err)
	}
	if err := filelock.LockAndWrite(s.Path, data); err != nil {
		return fmt.Errorf("failed to save handoff: %w", err)
	}
	return nil
}

// Load returns the stored record. A missing file yields ErrNoData and an
// undecodable one ErrCorrupt; callers treat both as "restart the assessment".
func (s *Store) Load() (*models.Handoff, error) {
	data, err := filelock.LockAndRead(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to load handoff: %w", err)
	}
	if isYAML(s.Path) {
		return DecodeYAML(data)
	}
	return Decode(data)
}

// Clear removes the stored record
func (s *Store) Clear() error {
	return filelock.LockAndRemove(s.Path)
}

// Decode parses a handoff record from JSON
func Decode(data []byte) (*models.Handoff, error) {
	var h models.Handoff
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return checked(&h)
}

// DecodeYAML parses a handoff record from YAML, as hand-written answer
// files usually are
func DecodeYAML(data []byte) (*models.Handoff, error) {
	var h models.Handoff
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return checked(&h)
}

func checked(h *models.Handoff) (*models.Handoff, error) {
	if h.Responses == nil {
		return nil, fmt.Errorf("%w: missing responses", ErrCorrupt)
	}
	return h, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
