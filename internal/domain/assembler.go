package domain

import (
	m "github.com/mouse-blink/impactplan/internal/model"
)

// Runners names the CI runner images used by the plan.
type Runners struct {
	Default string `yaml:"default"`
	Windows string `yaml:"windows"`
}

// DefaultRunners returns the GitHub-hosted runner labels.
func DefaultRunners() Runners {
	return Runners{
		Default: "ubuntu-latest",
		Windows: "windows-latest",
	}
}

// windowsService is the only service that also runs on Windows.
const windowsService = "fs"

// windowsCase is the single setup run on the Windows runner. It is fixed and
// does not depend on which fs setups were selected.
var windowsCase = m.NewCase(windowsService, "local_fs")

// Assemble packages per-component case lists into a Plan. Components without
// cases are disabled and have no job groups.
func Assemble(core []m.Case, bindings map[m.Language][]m.Case, runners Runners) m.Plan {
	plan := m.NewPlan()

	if len(core) > 0 {
		groups := []m.JobGroup{{OS: runners.Default, Cases: core}}

		if hasService(core, windowsService) {
			groups = append(groups, m.JobGroup{OS: runners.Windows, Cases: []m.Case{windowsCase}})
		}

		plan.Components[m.ComponentCore] = true
		plan.Jobs[m.ComponentCore] = groups
	}

	for _, lang := range m.Languages {
		cases := bindings[lang]
		if len(cases) == 0 {
			continue
		}

		plan.Components[lang.Component()] = true
		plan.Jobs[lang.Component()] = []m.JobGroup{{OS: runners.Default, Cases: cases}}
	}

	return plan
}

func hasService(cases []m.Case, service string) bool {
	for _, c := range cases {
		if c.Service == service {
			return true
		}
	}

	return false
}
