package model

import "encoding/json"

// JobGroup is a set of cases that run on one runner image.
type JobGroup struct {
	OS    string `json:"os"`
	Cases []Case `json:"cases"`
}

// Plan is the behavior test execution plan for one change.
type Plan struct {
	Components map[Component]bool
	Jobs       map[Component][]JobGroup
}

// NewPlan returns a plan in which every known component is disabled.
func NewPlan() Plan {
	plan := Plan{
		Components: map[Component]bool{ComponentCore: false},
		Jobs:       map[Component][]JobGroup{ComponentCore: {}},
	}

	for _, lang := range Languages {
		plan.Components[lang.Component()] = false
		plan.Jobs[lang.Component()] = []JobGroup{}
	}

	return plan
}

// CaseCount returns the number of cases scheduled for component.
func (p Plan) CaseCount(component Component) int {
	count := 0
	for _, group := range p.Jobs[component] {
		count += len(group.Cases)
	}

	return count
}

// MarshalJSON renders the plan in the shape consumed by the CI matrix:
// a "components" object followed by one job list per component.
func (p Plan) MarshalJSON() ([]byte, error) {
	components := make(map[string]bool, len(p.Components))
	for component, enabled := range p.Components {
		components[string(component)] = enabled
	}

	out := map[string]any{"components": components}

	for component := range p.Components {
		groups := p.Jobs[component]
		if groups == nil {
			groups = []JobGroup{}
		}

		out[string(component)] = groups
	}

	return json.Marshal(out)
}

// Components lists every plan component: core first, then bindings.
func Components() []Component {
	components := []Component{ComponentCore}
	for _, lang := range Languages {
		components = append(components, lang.Component())
	}

	return components
}
