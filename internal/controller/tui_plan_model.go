package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// groupDelegate renders one job group per line.
type groupDelegate struct{}

func (d groupDelegate) Height() int  { return 1 }
func (d groupDelegate) Spacing() int { return 0 }
func (d groupDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d groupDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	group, ok := item.(groupItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(18)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	osStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if group.skipped {
		nameStyle = nameStyle.Foreground(lipgloss.Color("8"))
		countStyle = countStyle.Foreground(lipgloss.Color("8"))
		osStyle = osStyle.Foreground(lipgloss.Color("8"))
	}

	if index == lm.Index() {
		nameStyle = nameStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		countStyle = countStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		osStyle = osStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	}

	count, runner := "-", "skipped"
	if !group.skipped {
		count = fmt.Sprintf("%d", len(group.cases))
		runner = group.os
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(count),
		nameStyle.Render(string(group.component)),
		osStyle.Render(runnerLabel(runner, lm.Width())),
	)
	_, _ = fmt.Fprint(w, line)
}

// planModel is a read-only browser over an assembled plan.
type planModel struct {
	width     int
	height    int
	groups    list.Model
	surface   m.Surface
	total     int
	enabled   int
	quitting  bool
	showCases bool
}

func newPlanModel(result domain.Result) planModel {
	items := planItems(result.Plan)

	listItems := make([]list.Item, 0, len(items))
	total := 0

	for _, item := range items {
		listItems = append(listItems, item)
		total += len(item.cases)
	}

	enabled := 0

	for _, component := range m.Components() {
		if result.Plan.Components[component] {
			enabled++
		}
	}

	groups := list.New(listItems, groupDelegate{}, 80, 10)
	groups.SetShowPagination(false)
	groups.SetShowFilter(true)
	groups.SetShowHelp(false)
	groups.SetShowTitle(false)
	groups.SetShowStatusBar(false)
	groups.FilterInput.Placeholder = "Filter by component…"

	return planModel{
		width:     80,
		height:    24,
		groups:    groups,
		surface:   result.Surface,
		total:     total,
		enabled:   enabled,
		showCases: true,
	}
}

func (pm planModel) Init() tea.Cmd {
	return nil
}

func (pm planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.groups.SetWidth(pm.width - 6)

	case tea.KeyMsg:
		if pm.groups.FilterState() == list.Filtering {
			pm.groups, cmd = pm.groups.Update(msg)

			return pm, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			pm.quitting = true

			return pm, tea.Quit
		case "enter", " ":
			pm.showCases = !pm.showCases

			return pm, nil
		default:
			pm.groups, cmd = pm.groups.Update(msg)

			return pm, cmd
		}
	}

	return pm, cmd
}

func (pm planModel) selected() (groupItem, bool) {
	item, ok := pm.groups.SelectedItem().(groupItem)

	return item, ok
}

func (pm planModel) View() string {
	if pm.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	services := "none"
	if pm.surface.AllServices {
		services = "all"
	} else if names := pm.surface.ServiceList(); len(names) > 0 {
		services = strings.Join(names, ", ")
	}

	title := titleStyle.Render("Behavior Test Plan")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Components: %s/%d   Cases: %s   Services: %s",
		accentStyle.Render(fmt.Sprintf("%d", pm.enabled)),
		len(m.Components()),
		accentStyle.Render(fmt.Sprintf("%d", pm.total)),
		accentStyle.Render(services),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(pm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • enter cases • / filter • q quit")

	sections := []string{title, summary, pm.renderGroups()}
	if pm.showCases {
		sections = append(sections, pm.renderCases())
	}

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (pm planModel) renderGroups() string {
	listWidth := pm.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-18s  %s", "Cases", "Component", "Runner"))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left, headers, pm.groups.View()))
}

func (pm planModel) renderCases() string {
	style := lipgloss.NewStyle().Padding(0, 0, 1, 3)

	group, ok := pm.selected()
	if !ok || group.skipped {
		return style.Foreground(lipgloss.Color("8")).Render("No cases scheduled")
	}

	// Room for title, summary, group list and footer.
	maxRows := pm.height - 20
	if maxRows < 3 {
		maxRows = 3
	}

	lines := make([]string, 0, len(group.cases))

	for i, c := range group.cases {
		if i == maxRows {
			lines = append(lines, fmt.Sprintf("… %d more", len(group.cases)-maxRows))

			break
		}

		lines = append(lines, fmt.Sprintf("%-24s %-28s %s", c.Service, c.Setup, c.Feature))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// rowPrefixWidth covers the count and component columns and their gaps.
const rowPrefixWidth = 6 + 2 + 18 + 2

// runnerLabel fits runner into what is left of a row of rowWidth. The image
// tag ("-latest") goes first, then the name is cut.
func runnerLabel(runner string, rowWidth int) string {
	room := rowWidth - rowPrefixWidth
	if room <= 0 {
		return ""
	}

	if lipgloss.Width(runner) <= room {
		return runner
	}

	if i := strings.LastIndex(runner, "-"); i > 0 && lipgloss.Width(runner[:i]) <= room {
		return runner[:i]
	}

	return lipgloss.NewStyle().MaxWidth(room).Render(runner)
}
