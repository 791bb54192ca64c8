package model

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage is returned when a binding language is not supported.
var ErrUnknownLanguage = errors.New("unknown binding language")

// Language identifies a language binding with its own behavior test suite.
type Language string

// Supported binding languages.
const (
	LanguageJava   Language = "java"
	LanguagePython Language = "python"
	LanguageNodejs Language = "nodejs"
)

// Languages lists every supported binding in plan order.
var Languages = []Language{
	LanguageJava,
	LanguagePython,
	LanguageNodejs,
}

// ParseLanguage converts a language identifier into a Language.
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}

	return lang, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}

	return false
}

// Component is the plan component that runs this language's tests.
func (l Language) Component() Component {
	return Component("binding_" + string(l))
}

// Component names a test suite in the plan.
type Component string

// ComponentCore is the core runtime suite.
const ComponentCore Component = "core"
