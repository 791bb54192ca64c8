package domain

import (
	"regexp"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// rule maps a single changed path to the surface it affects.
// ok is false when the rule does not apply to the path.
type rule struct {
	name  string
	apply func(path m.Path) (delta m.Surface, ok bool)
}

// buildRules returns the classification rules for layout. Effects of the
// returned rules are unions, so their order does not change the outcome.
func buildRules(layout Layout) ([]rule, error) {
	serviceSource, err := compileServicePattern("service source", layout.ServiceSource)
	if err != nil {
		return nil, err
	}

	serviceTests, err := compileServicePattern("service tests", layout.ServiceTests)
	if err != nil {
		return nil, err
	}

	rules := []rule{
		exactRule("full-workflow", layout.FullWorkflow, everything()),
		exactRule("core-workflow", layout.CoreWorkflow, coreAllServices()),
	}

	for _, lang := range m.Languages {
		rules = append(rules, exactRule("binding-workflow-"+string(lang), layout.bindingWorkflow(lang), bindingAllServices(lang)))
	}

	rules = append(rules, rule{
		name: "core-source",
		apply: func(path m.Path) (m.Surface, bool) {
			if !layout.isSharedCore(path) {
				return m.Surface{}, false
			}

			return everything(), true
		},
	})

	for _, lang := range m.Languages {
		rules = append(rules, prefixRule("binding-source-"+string(lang), layout.bindingDir(lang), bindingAllServices(lang)))
	}

	rules = append(rules,
		serviceRule("service-source", serviceSource),
		serviceRule("service-tests", serviceTests),
	)

	return rules, nil
}

func exactRule(name, target string, effect m.Surface) rule {
	return rule{
		name: name,
		apply: func(path m.Path) (m.Surface, bool) {
			if string(path) != target {
				return m.Surface{}, false
			}

			return effect, true
		},
	}
}

func prefixRule(name, prefix string, effect m.Surface) rule {
	return rule{
		name: name,
		apply: func(path m.Path) (m.Surface, bool) {
			if !path.HasPrefix(prefix) {
				return m.Surface{}, false
			}

			return effect, true
		},
	}
}

// serviceRule marks core and every binding affected and records the captured
// service. It does not touch AllServices.
func serviceRule(name string, pattern *regexp.Regexp) rule {
	return rule{
		name: name,
		apply: func(path m.Path) (m.Surface, bool) {
			match := pattern.FindStringSubmatch(string(path))
			if match == nil {
				return m.Surface{}, false
			}

			delta := allComponents()
			delta.Services[match[1]] = struct{}{}

			return delta, true
		},
	}
}

// allComponents marks core and every binding affected.
func allComponents() m.Surface {
	s := m.NewSurface()
	s.Core = true

	for _, lang := range m.Languages {
		s.Bindings[lang] = true
	}

	return s
}

func everything() m.Surface {
	s := allComponents()
	s.AllServices = true

	return s
}

func coreAllServices() m.Surface {
	s := m.NewSurface()
	s.Core = true
	s.AllServices = true

	return s
}

func bindingAllServices(lang m.Language) m.Surface {
	s := m.NewSurface()
	s.Bindings[lang] = true
	s.AllServices = true

	return s
}
