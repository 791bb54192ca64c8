package controller

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// JSONUI writes compact JSON, one document per call.
type JSONUI struct {
	cmd *cobra.Command
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(cmd *cobra.Command) *JSONUI {
	return &JSONUI{cmd: cmd}
}

// DisplayPlan prints the plan in the CI matrix shape.
func (j *JSONUI) DisplayPlan(result domain.Result) error {
	return j.write(result.Plan)
}

// DisplaySurface prints the affected surface.
func (j *JSONUI) DisplaySurface(surface m.Surface) error {
	return j.write(surface)
}

// DisplayCases prints the catalog entries.
func (j *JSONUI) DisplayCases(entries []m.CatalogEntry) error {
	if entries == nil {
		entries = []m.CatalogEntry{}
	}

	return j.write(entries)
}

func (j *JSONUI) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(j.cmd.OutOrStdout(), string(data))

	return err
}
