package controller

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/impactplan/internal/model"
)

func TestTUI_DisplayPlan_RunsPlanModel(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewTUI(cmd)

	var got tea.Model
	ui.run = func(model tea.Model) error {
		got = model
		return nil
	}

	require.NoError(t, ui.DisplayPlan(sampleResult()))

	pm, ok := got.(planModel)
	require.True(t, ok)
	assert.Equal(t, 4, pm.total)
}

func TestTUI_DisplayPlan_WrapsProgramError(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewTUI(cmd)
	ui.run = func(tea.Model) error { return errors.New("no tty") }

	err := ui.DisplayPlan(sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan browser: no tty")
}

func TestTUI_DisplayCases_UsesTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, NewTUI(cmd).DisplayCases([]m.CatalogEntry{{Case: m.NewCase("fs", "local_fs")}}))

	assert.Contains(t, buf.String(), "local_fs")
}
