// Package report renders assessment results and the question bank for
// people: terminal text, Markdown, HTML and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/careerfit/internal/models"
	"github.com/harrison/careerfit/internal/scoring"
)

// Format selects a renderer
type Format string

// Supported formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

// ParseFormat accepts a format name, or "md" for Markdown
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, markdown, html or json)", s)
}

// Render writes r to w in format f. Color only affects FormatText.
func Render(w io.Writer, f Format, r *models.AssessmentResult, useColor bool) error {
	switch f {
	case FormatText:
		return Text(w, r, useColor)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		doc, err := HTML(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc)
		return err
	case FormatJSON:
		return JSON(w, r)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// JSON writes the result as indented JSON
func JSON(w io.Writer, r *models.AssessmentResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// dimensionRow is one labelled WISCAR value in report order
type dimensionRow struct {
	label string
	value float64
}

func dimensionRows(w models.WISCARScores) []dimensionRow {
	rows := make([]dimensionRow, 0, len(scoring.DimensionTable))
	for _, m := range scoring.DimensionTable {
		rows = append(rows, dimensionRow{label: m.Label, value: scoring.DimensionValue(w, m.Dimension)})
	}
	return rows
}

// FormatDuration renders whole seconds as "12m 5s"
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	m, s := seconds/60, seconds%60
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
