package domain

import (
	m "github.com/mouse-blink/impactplan/internal/model"
)

// GateSecrets drops entries that need secrets when none are available.
func GateSecrets(entries []m.CatalogEntry, hasSecrets bool) []m.CatalogEntry {
	gated := make([]m.CatalogEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.RequiresSecrets && !hasSecrets {
			continue
		}

		gated = append(gated, entry)
	}

	m.SortEntries(gated)

	return gated
}

// ProvidedCases returns the catalog the planner works on: gated by secret
// availability and ordered by service, then setup.
func ProvidedCases(entries []m.CatalogEntry, hasSecrets bool) []m.Case {
	gated := GateSecrets(entries, hasSecrets)

	cases := make([]m.Case, 0, len(gated))
	for _, entry := range gated {
		cases = append(cases, entry.Case)
	}

	return cases
}
