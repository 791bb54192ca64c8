package domain

import (
	"fmt"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// CoreCases selects the core behavior cases to run.
//
// Push events run the whole catalog without looking at the surface.
func CoreCases(cases []m.Case, surface m.Surface, isPush bool) []m.Case {
	return selectCases(cases, surface, surface.Core, isPush)
}

// BindingCases selects the behavior cases to run for the lang binding.
// The catalog is reduced to one case per service before selection.
func BindingCases(cases []m.Case, surface m.Surface, lang m.Language, isPush bool) ([]m.Case, error) {
	unique := UniqueByService(cases)

	affected, err := surface.Binding(lang)
	if err != nil {
		return nil, fmt.Errorf("binding cases: %w", err)
	}

	return selectCases(unique, surface, affected, isPush), nil
}

func selectCases(cases []m.Case, surface m.Surface, affected bool, isPush bool) []m.Case {
	switch {
	case isPush:
		return cases
	case !affected:
		return []m.Case{}
	case surface.AllServices:
		return cases
	default:
		return filterServices(cases, surface)
	}
}
