package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
)

// Bar draws fixed-width ASCII bars for percentages and quiz progress
type Bar struct {
	width       int
	enableColor bool
}

// NewBar returns a bar width characters wide. Widths below 1 become 10.
func NewBar(width int, enableColor bool) *Bar {
	if width < 1 {
		width = 10
	}
	return &Bar{width: width, enableColor: enableColor}
}

// Score renders a 0-100 score, colored by band: green from 75, yellow from
// 60, red below. Out-of-range scores are drawn clamped but printed as given.
func (b *Bar) Score(score float64) string {
	perc := clamp(score)
	s := fmt.Sprintf("%s %3.0f%%", b.fill(perc), score)
	if !b.enableColor {
		return s
	}
	return bandColor(perc).Sprint(s)
}

// Progress renders questions answered out of total, cyan until complete
func (b *Bar) Progress(done, total int) string {
	perc := 0.0
	if total > 0 {
		perc = clamp(float64(done) / float64(total) * 100)
	}
	s := fmt.Sprintf("%s %d/%d (%d%%)", b.fill(perc), done, total, int(perc))
	if !b.enableColor {
		return s
	}
	if perc >= 100 {
		return newColor(true, color.FgGreen).Sprint(s)
	}
	return newColor(true, color.FgCyan).Sprint(s)
}

func (b *Bar) fill(perc float64) string {
	filled := int(math.Round(perc * float64(b.width) / 100))
	if filled > b.width {
		filled = b.width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", b.width-filled) + "]"
}

func bandColor(score float64) *color.Color {
	switch {
	case score >= 75:
		return newColor(true, color.FgGreen)
	case score >= 60:
		return newColor(true, color.FgYellow)
	default:
		return newColor(true, color.FgRed)
	}
}

// newColor returns c with color forced on or off, ignoring terminal detection
func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
