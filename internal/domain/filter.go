package domain

import (
	m "github.com/mouse-blink/impactplan/internal/model"
)

// UniqueByService keeps the first case of every service, in input order.
//
// Bindings only re-check the cross-language plumbing, so one setup per
// service is enough for them; core covers every setup. Callers pass cases
// sorted by service and setup, which makes the kept case the alphabetically
// first setup.
func UniqueByService(cases []m.Case) []m.Case {
	seen := make(map[string]struct{}, len(cases))
	unique := make([]m.Case, 0, len(cases))

	for _, c := range cases {
		if _, ok := seen[c.Service]; ok {
			continue
		}

		seen[c.Service] = struct{}{}
		unique = append(unique, c)
	}

	return unique
}

// filterServices keeps the cases whose service is explicitly affected.
func filterServices(cases []m.Case, surface m.Surface) []m.Case {
	selected := make([]m.Case, 0, len(cases))

	for _, c := range cases {
		if surface.HasService(c.Service) {
			selected = append(selected, c)
		}
	}

	return selected
}
