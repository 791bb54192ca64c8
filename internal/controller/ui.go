// Package controller renders planner results for humans and CI.
package controller

import (
	"fmt"

	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// Format selects how results are rendered.
type Format string

// Available formats.
const (
	FormatAuto  Format = "auto"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatTUI   Format = "tui"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatAuto, FormatJSON, FormatTable, FormatTUI:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected auto, json, table, tui)", s)
	}
}

// UI defines how planner results are displayed.
// Implementations can use different output methods (JSON, table, TUI).
type UI interface {
	DisplayPlan(result domain.Result) error
	DisplaySurface(surface m.Surface) error
	DisplayCases(entries []m.CatalogEntry) error
}
