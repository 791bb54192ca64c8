package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// SimpleUI renders results as plain text tables using cobra's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPlan prints one row per job group, and one row for every skipped component.
func (s *SimpleUI) DisplayPlan(result domain.Result) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Component", "Runner", "Cases", "Services"})

	total := 0

	for _, component := range m.Components() {
		groups := result.Plan.Jobs[component]
		if !result.Plan.Components[component] || len(groups) == 0 {
			table.Append([]string{string(component), "-", "skipped", ""})

			continue
		}

		for _, group := range groups {
			table.Append([]string{
				string(component),
				group.OS,
				fmt.Sprintf("%d", len(group.Cases)),
				strings.Join(serviceNames(group.Cases), ", "),
			})

			total += len(group.Cases)
		}
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%d", total), ""})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplaySurface prints which components and services a change affects.
func (s *SimpleUI) DisplaySurface(surface m.Surface) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Component", "Affected"})
	table.Append([]string{string(m.ComponentCore), yesNo(surface.Core)})

	for _, lang := range m.Languages {
		table.Append([]string{string(lang.Component()), yesNo(surface.Bindings[lang])})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	services := "(none)"
	if surface.AllServices {
		services = "all"
	} else if names := surface.ServiceList(); len(names) > 0 {
		services = strings.Join(names, ", ")
	}

	s.printf("\nServices: %s\n", services)

	if !surface.Affected() {
		s.printf("No behavior tests affected\n")
	}

	return nil
}

// DisplayCases prints the catalog as a table.
func (s *SimpleUI) DisplayCases(entries []m.CatalogEntry) error {
	if len(entries) == 0 {
		s.printf("No cases found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Service", "Setup", "Feature", "Secrets"})

	services := make(map[string]struct{})

	for _, entry := range entries {
		services[entry.Service] = struct{}{}
		table.Append([]string{entry.Service, entry.Setup, entry.Feature, yesNo(entry.RequiresSecrets)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Services %d", len(services)),
		fmt.Sprintf("Cases %d", len(entries)),
		"",
		"",
	})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func serviceNames(cases []m.Case) []string {
	seen := make(map[string]struct{}, len(cases))
	names := make([]string, 0, len(cases))

	for _, c := range cases {
		if _, ok := seen[c.Service]; ok {
			continue
		}

		seen[c.Service] = struct{}{}
		names = append(names, c.Service)
	}

	return names
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
