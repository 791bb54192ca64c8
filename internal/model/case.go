package model

import (
	"sort"
	"strings"
)

// featurePrefix is prepended to every service build feature.
const featurePrefix = "services-"

// Case is a single service/setup combination of the behavior test matrix.
type Case struct {
	Setup   string `json:"setup" yaml:"setup"`
	Service string `json:"service" yaml:"service"`
	Feature string `json:"feature" yaml:"feature"`
}

// NewCase builds a Case and derives its feature flag from the service.
func NewCase(service, setup string) Case {
	return Case{
		Setup:   setup,
		Service: service,
		Feature: FeatureFor(service),
	}
}

// FeatureFor returns the build feature that enables service.
func FeatureFor(service string) string {
	return featurePrefix + strings.ReplaceAll(strings.ToLower(service), "_", "-")
}

// CatalogEntry is a discovered case together with facts about its definition.
type CatalogEntry struct {
	Case
	// Name is the display name declared by the setup action, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// RequiresSecrets is set when the setup definition references the secret store.
	RequiresSecrets bool `json:"requires_secrets" yaml:"requires_secrets"`
}

// SortCases orders cases by service, then setup.
func SortCases(cases []Case) {
	sort.SliceStable(cases, func(i, j int) bool {
		return lessCase(cases[i], cases[j])
	})
}

// SortEntries orders catalog entries by service, then setup.
func SortEntries(entries []CatalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lessCase(entries[i].Case, entries[j].Case)
	})
}

func lessCase(a, b Case) bool {
	if a.Service != b.Service {
		return a.Service < b.Service
	}

	return a.Setup < b.Setup
}
