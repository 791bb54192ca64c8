package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/impactplan/internal/adapter"
	m "github.com/mouse-blink/impactplan/internal/model"
)

// PlanArgs carries the inputs of one planning run. Environment flags are
// passed in explicitly; nothing in this package reads the process environment.
type PlanArgs struct {
	Changes     []m.Path
	ServicesDir m.Path
	IsPush      bool
	HasSecrets  bool
}

// Result is the outcome of a planning run.
type Result struct {
	Surface m.Surface
	Catalog []m.Case
	Plan    m.Plan
}

// Planner turns a change set into a behavior test plan.
type Planner interface {
	Hint(args PlanArgs) m.Surface
	Cases(ctx context.Context, args PlanArgs) ([]m.CatalogEntry, error)
	Plan(ctx context.Context, args PlanArgs) (Result, error)
}

type planner struct {
	catalog    adapter.CatalogAdapter
	classifier Classifier
	runners    Runners
	log        *slog.Logger
}

// NewPlanner creates a Planner backed by the given catalog source and classifier.
func NewPlanner(catalog adapter.CatalogAdapter, classifier Classifier, runners Runners, log *slog.Logger) Planner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &planner{
		catalog:    catalog,
		classifier: classifier,
		runners:    runners,
		log:        log,
	}
}

// Hint classifies the change set without touching the catalog.
func (p *planner) Hint(args PlanArgs) m.Surface {
	return p.classifier.Classify(args.Changes)
}

// Cases returns the catalog entries available to this run.
func (p *planner) Cases(ctx context.Context, args PlanArgs) ([]m.CatalogEntry, error) {
	entries, err := p.catalog.Discover(ctx, args.ServicesDir)
	if err != nil {
		return nil, fmt.Errorf("discover catalog: %w", err)
	}

	gated := GateSecrets(entries, args.HasSecrets)
	if dropped := len(entries) - len(gated); dropped > 0 {
		p.log.Info("catalog.gated", "dropped", dropped, "reason", "secrets unavailable")
	}

	return gated, nil
}

// Plan computes the full execution plan for args.
func (p *planner) Plan(ctx context.Context, args PlanArgs) (Result, error) {
	entries, err := p.Cases(ctx, args)
	if err != nil {
		return Result{}, err
	}

	cases := ProvidedCases(entries, true)
	surface := p.Hint(args)

	p.log.Debug("surface.classified",
		"changes", len(args.Changes),
		"core", surface.Core,
		"all_service", surface.AllServices,
		"services", surface.ServiceList(),
	)

	if args.IsPush {
		p.log.Info("plan.push", "reason", "push events run the full catalog")
	}

	core := CoreCases(cases, surface, args.IsPush)

	bindings := make(map[m.Language][]m.Case, len(m.Languages))
	for _, lang := range m.Languages {
		selected, err := BindingCases(cases, surface, lang, args.IsPush)
		if err != nil {
			return Result{}, err
		}

		bindings[lang] = selected
	}

	plan := Assemble(core, bindings, p.runners)

	for _, component := range m.Components() {
		p.log.Debug("plan.component", "component", component, "enabled", plan.Components[component], "cases", plan.CaseCount(component))
	}

	return Result{Surface: surface, Catalog: cases, Plan: plan}, nil
}
