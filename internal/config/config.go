// Package config resolves planner settings from defaults, an optional YAML
// file, and the CI environment.
//
// Precedence, lowest first: built-in defaults, the YAML file, environment
// variables, command-line flags. Flags are applied by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/impactplan/internal/adapter"
	"github.com/mouse-blink/impactplan/internal/domain"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".impactplan.yaml"

// Environment variables set by the CI workflow.
const (
	EnvIsPush       = "GITHUB_IS_PUSH"
	EnvHasSecrets   = "GITHUB_HAS_SECRETS"
	EnvGitHubOutput = "GITHUB_OUTPUT"
)

// Config holds every planner setting.
type Config struct {
	ServicesDir  string         `yaml:"services_dir"`
	SecretMarker string         `yaml:"secret_marker"`
	Layout       domain.Layout  `yaml:"layout"`
	Runners      domain.Runners `yaml:"runners"`

	// Run-scoped flags, never read from the file.
	IsPush       bool   `yaml:"-"`
	HasSecrets   bool   `yaml:"-"`
	GitHubOutput string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServicesDir:  ".github/services",
		SecretMarker: adapter.DefaultSecretMarker,
		Layout:       domain.DefaultLayout(),
		Runners:      domain.DefaultRunners(),
	}
}

// Load reads path on top of the defaults. A missing file is only an error
// when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFile
	}

	// #nosec G304 - path is the user's config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// WithEnv applies the CI environment. Only the literal "true" enables a flag.
func (c Config) WithEnv(lookup LookupFunc) Config {
	c.IsPush = isTrue(lookup, EnvIsPush)
	c.HasSecrets = isTrue(lookup, EnvHasSecrets)

	if v, ok := lookup(EnvGitHubOutput); ok {
		c.GitHubOutput = v
	}

	return c
}

// Validate reports settings that cannot produce a plan.
func (c Config) Validate() error {
	if c.ServicesDir == "" {
		return errors.New("services_dir is empty")
	}

	if c.Runners.Default == "" || c.Runners.Windows == "" {
		return errors.New("runners.default and runners.windows are required")
	}

	return c.Layout.Validate()
}

func isTrue(lookup LookupFunc, key string) bool {
	v, ok := lookup(key)

	return ok && v == "true"
}
