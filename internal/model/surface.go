package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Surface records which components and services a change affects.
//
// A Surface is a value: Merge returns a new Surface and never modifies either
// operand, so surfaces built from individual paths can be folded in any order.
type Surface struct {
	Core        bool
	Bindings    map[Language]bool
	AllServices bool
	Services    map[string]struct{}
}

// NewSurface returns an unaffected surface.
func NewSurface() Surface {
	return Surface{
		Bindings: map[Language]bool{},
		Services: map[string]struct{}{},
	}
}

// Merge returns the union of s and other.
func (s Surface) Merge(other Surface) Surface {
	out := NewSurface()
	out.Core = s.Core || other.Core
	out.AllServices = s.AllServices || other.AllServices

	for _, src := range []Surface{s, other} {
		for lang, affected := range src.Bindings {
			if affected {
				out.Bindings[lang] = true
			}
		}

		for service := range src.Services {
			out.Services[service] = struct{}{}
		}
	}

	return out
}

// Covers reports whether s is affected everywhere other is.
func (s Surface) Covers(other Surface) bool {
	if other.Core && !s.Core {
		return false
	}

	if other.AllServices && !s.AllServices {
		return false
	}

	for lang, affected := range other.Bindings {
		if affected && !s.Bindings[lang] {
			return false
		}
	}

	for service := range other.Services {
		if _, ok := s.Services[service]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether s and other describe the same affected surface.
func (s Surface) Equal(other Surface) bool {
	return s.Covers(other) && other.Covers(s)
}

// Binding reports whether the binding for lang is affected.
func (s Surface) Binding(lang Language) (bool, error) {
	if !lang.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}

	return s.Bindings[lang], nil
}

// HasService reports whether service was explicitly matched.
func (s Surface) HasService(service string) bool {
	_, ok := s.Services[service]

	return ok
}

// ServiceList returns the explicitly affected services in sorted order.
func (s Surface) ServiceList() []string {
	services := make([]string, 0, len(s.Services))
	for service := range s.Services {
		services = append(services, service)
	}

	sort.Strings(services)

	return services
}

// Affected reports whether any component is affected.
func (s Surface) Affected() bool {
	if s.Core {
		return true
	}

	for _, affected := range s.Bindings {
		if affected {
			return true
		}
	}

	return false
}

// MarshalJSON renders the surface with one flag per supported binding.
func (s Surface) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"core":        s.Core,
		"all_service": s.AllServices,
		"services":    s.ServiceList(),
	}

	for _, lang := range Languages {
		out[string(lang.Component())] = s.Bindings[lang]
	}

	return json.Marshal(out)
}
