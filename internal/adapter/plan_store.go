package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// PlanStore persists plans for later CI stages.
type PlanStore interface {
	// Save writes the plan as indented JSON to path.
	Save(path m.Path, plan m.Plan) error
	// WriteGitHubOutput appends key=<compact plan JSON> to a GitHub Actions
	// output file.
	WriteGitHubOutput(path m.Path, key string, plan m.Plan) error
}

// LocalPlanStore writes plans to the local filesystem.
type LocalPlanStore struct{}

// NewPlanStore constructs a PlanStore implementation.
func NewPlanStore() PlanStore {
	return &LocalPlanStore{}
}

// Save writes plan to path, creating parent directories as needed.
func (ps *LocalPlanStore) Save(path m.Path, plan m.Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create plan dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	return nil
}

// WriteGitHubOutput appends the plan to the step output file.
func (ps *LocalPlanStore) WriteGitHubOutput(path m.Path, key string, plan m.Plan) error {
	if key == "" {
		return fmt.Errorf("github output key is empty")
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	// #nosec G304 - path comes from the runner's GITHUB_OUTPUT
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open github output: %w", err)
	}

	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%s=%s\n", key, data); err != nil {
		return fmt.Errorf("write github output: %w", err)
	}

	return nil
}
