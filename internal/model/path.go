// Package model defines the data structures shared by the planner.
package model

import "strings"

// Path is a repository-relative, forward-slash separated file path.
type Path string

// HasPrefix reports whether the path starts with prefix.
func (p Path) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(p), prefix)
}

// HasSuffix reports whether the path ends with suffix.
func (p Path) HasSuffix(suffix string) bool {
	return strings.HasSuffix(string(p), suffix)
}
