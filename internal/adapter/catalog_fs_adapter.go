// Package adapter contains the infrastructure adapters used by the planner.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/impactplan/internal/model"
)

// ActionFile is the setup definition inside every service/setup directory.
const ActionFile = "action.yml"

// DefaultSecretMarker is the secret store reference that marks a setup as
// needing credentials.
const DefaultSecretMarker = "op://services"

const defaultCatalogWorkers = 8

// CatalogAdapter discovers the behavior test catalog.
type CatalogAdapter interface {
	// Discover lists every case under dir, laid out as
	// <dir>/<service>/<setup>/action.yml, ordered by service then setup.
	Discover(ctx context.Context, dir m.Path) ([]m.CatalogEntry, error)
}

// LocalCatalogAdapter reads the catalog from the local filesystem.
type LocalCatalogAdapter struct {
	secretMarker []byte
	workers      int
}

// NewLocalCatalogAdapter constructs a LocalCatalogAdapter. An empty marker
// falls back to DefaultSecretMarker.
func NewLocalCatalogAdapter(secretMarker string) *LocalCatalogAdapter {
	if secretMarker == "" {
		secretMarker = DefaultSecretMarker
	}

	return &LocalCatalogAdapter{
		secretMarker: []byte(secretMarker),
		workers:      defaultCatalogWorkers,
	}
}

type actionYAML struct {
	Name string `yaml:"name"`
}

type actionRef struct {
	service string
	setup   string
	path    string
}

// Discover walks dir and parses every setup action concurrently.
func (a *LocalCatalogAdapter) Discover(ctx context.Context, dir m.Path) ([]m.CatalogEntry, error) {
	refs, err := a.listActions(string(dir))
	if err != nil {
		return nil, err
	}

	entries := make([]m.CatalogEntry, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entry, err := a.readAction(ref)
			if err != nil {
				return err
			}

			entries[i] = entry

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.SortEntries(entries)

	return entries, nil
}

func (a *LocalCatalogAdapter) listActions(root string) ([]actionRef, error) {
	services, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read services dir: %w", err)
	}

	var refs []actionRef

	for _, service := range services {
		if !service.IsDir() {
			continue
		}

		serviceDir := filepath.Join(root, service.Name())

		setups, err := os.ReadDir(serviceDir)
		if err != nil {
			return nil, fmt.Errorf("read service %s: %w", service.Name(), err)
		}

		for _, setup := range setups {
			if !setup.IsDir() {
				continue
			}

			refs = append(refs, actionRef{
				service: service.Name(),
				setup:   setup.Name(),
				path:    filepath.Join(serviceDir, setup.Name(), ActionFile),
			})
		}
	}

	return refs, nil
}

func (a *LocalCatalogAdapter) readAction(ref actionRef) (m.CatalogEntry, error) {
	// #nosec G304 - path is built from the services dir listing
	content, err := os.ReadFile(ref.path)
	if err != nil {
		return m.CatalogEntry{}, fmt.Errorf("read setup %s/%s: %w", ref.service, ref.setup, err)
	}

	var action actionYAML
	if err := yaml.Unmarshal(content, &action); err != nil {
		return m.CatalogEntry{}, fmt.Errorf("parse %s: %w", ref.path, err)
	}

	return m.CatalogEntry{
		Case:            m.NewCase(ref.service, ref.setup),
		Name:            action.Name,
		RequiresSecrets: bytes.Contains(content, a.secretMarker),
	}, nil
}
