package domain

import (
	"log/slog"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// Classifier maps changed paths to the surface they affect.
type Classifier interface {
	Classify(paths []m.Path) m.Surface
}

type classifier struct {
	layout Layout
	rules  []rule
	log    *slog.Logger
}

// NewClassifier builds a Classifier for the given repository layout.
func NewClassifier(layout Layout, log *slog.Logger) (Classifier, error) {
	rules, err := buildRules(layout)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &classifier{layout: layout, rules: rules, log: log}, nil
}

// Classify folds the per-path surfaces into one. The result does not depend
// on the order of paths, and adding paths never removes affected status.
func (c *classifier) Classify(paths []m.Path) m.Surface {
	surface := m.NewSurface()

	for _, path := range paths {
		surface = surface.Merge(c.classifyPath(path))
	}

	return surface
}

func (c *classifier) classifyPath(path m.Path) m.Surface {
	delta := m.NewSurface()

	if c.layout.isDoc(path) {
		c.log.Debug("path.ignored", "path", path, "reason", "documentation")

		return delta
	}

	for _, r := range c.rules {
		effect, ok := r.apply(path)
		if !ok {
			continue
		}

		c.log.Debug("path.matched", "path", path, "rule", r.name)
		delta = delta.Merge(effect)
	}

	return delta
}
