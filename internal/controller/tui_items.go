package controller

import (
	"fmt"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// groupItem is one row of the plan browser: a job group, or a skipped component.
type groupItem struct {
	component m.Component
	os        string
	cases     []m.Case
	skipped   bool
}

func (g groupItem) FilterValue() string {
	return fmt.Sprintf("%s %s", g.component, g.os)
}

func planItems(plan m.Plan) []groupItem {
	var items []groupItem

	for _, component := range m.Components() {
		groups := plan.Jobs[component]
		if !plan.Components[component] || len(groups) == 0 {
			items = append(items, groupItem{component: component, skipped: true})

			continue
		}

		for _, group := range groups {
			items = append(items, groupItem{component: component, os: group.OS, cases: group.Cases})
		}
	}

	return items
}
