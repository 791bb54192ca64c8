package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// Layout describes where the repository keeps the things the classifier
// looks for. Every field is matched against forward-slash relative paths.
type Layout struct {
	// DocSuffixes lists file suffixes that never affect behavior tests.
	DocSuffixes []string `yaml:"doc_suffixes"`
	// FullWorkflow is the workflow that drives every behavior suite.
	FullWorkflow string `yaml:"full_workflow"`
	// CoreWorkflow is the workflow that drives the core behavior suite.
	CoreWorkflow string `yaml:"core_workflow"`
	// BindingWorkflow is a format string taking the binding language.
	BindingWorkflow string `yaml:"binding_workflow"`
	// CoreDir is the core source tree.
	CoreDir string `yaml:"core_dir"`
	// CoreExcludes are subtrees of CoreDir that do not affect shared core logic.
	CoreExcludes []string `yaml:"core_excludes"`
	// BindingDir is a format string taking the binding language.
	BindingDir string `yaml:"binding_dir"`
	// ServiceSource must contain exactly one capture group for the service name.
	ServiceSource string `yaml:"service_source"`
	// ServiceTests must contain exactly one capture group for the service name.
	ServiceTests string `yaml:"service_tests"`
}

// DefaultLayout returns the layout of the storage repository's behavior tests.
func DefaultLayout() Layout {
	return Layout{
		DocSuffixes:     []string{".md"},
		FullWorkflow:    ".github/workflows/behavior_test.yml",
		CoreWorkflow:    ".github/workflows/behavior_test_core.yml",
		BindingWorkflow: ".github/workflows/behavior_test_binding_%s.yml",
		CoreDir:         "core/",
		CoreExcludes: []string{
			"core/benches/",
			"core/edge/",
			"core/fuzz/",
			"core/src/services/",
		},
		BindingDir:    "bindings/%s/",
		ServiceSource: `core/src/services/([^/]+)/`,
		ServiceTests:  `\.github/services/([^/]+)/`,
	}
}

func (l Layout) bindingWorkflow(lang m.Language) string {
	return fmt.Sprintf(l.BindingWorkflow, lang)
}

func (l Layout) bindingDir(lang m.Language) string {
	return fmt.Sprintf(l.BindingDir, lang)
}

func (l Layout) isDoc(path m.Path) bool {
	for _, suffix := range l.DocSuffixes {
		if path.HasSuffix(suffix) {
			return true
		}
	}

	return false
}

func (l Layout) isSharedCore(path m.Path) bool {
	if !path.HasPrefix(l.CoreDir) {
		return false
	}

	for _, exclude := range l.CoreExcludes {
		if path.HasPrefix(exclude) {
			return false
		}
	}

	return true
}

func compileServicePattern(name, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern %q: %w", name, expr, err)
	}

	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%s pattern %q must have exactly one capture group", name, expr)
	}

	return re, nil
}

// Validate checks that the layout can be used to build a classifier.
func (l Layout) Validate() error {
	if _, err := compileServicePattern("service source", l.ServiceSource); err != nil {
		return err
	}

	if _, err := compileServicePattern("service tests", l.ServiceTests); err != nil {
		return err
	}

	if strings.Count(l.BindingWorkflow, "%s") != 1 {
		return fmt.Errorf("binding workflow %q must contain one %%s", l.BindingWorkflow)
	}

	if strings.Count(l.BindingDir, "%s") != 1 {
		return fmt.Errorf("binding dir %q must contain one %%s", l.BindingDir)
	}

	return nil
}
