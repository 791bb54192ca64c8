package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// TUI implements UI using Bubble Tea for the plan and plain tables for
// everything else.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
	run    func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	t := &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
	t.run = t.runProgram

	return t
}

// DisplayPlan opens an interactive browser over the plan.
func (t *TUI) DisplayPlan(result domain.Result) error {
	if err := t.run(newPlanModel(result)); err != nil {
		return fmt.Errorf("plan browser: %w", err)
	}

	return nil
}

// DisplaySurface prints the affected surface as a table.
func (t *TUI) DisplaySurface(surface m.Surface) error {
	return t.simple.DisplaySurface(surface)
}

// DisplayCases prints the catalog as a table.
func (t *TUI) DisplayCases(entries []m.CatalogEntry) error {
	return t.simple.DisplayCases(entries)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(
		model,
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}
