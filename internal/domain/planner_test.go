package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/impactplan/internal/adapter/mocks"
	m "github.com/mouse-blink/impactplan/internal/model"
)

func catalogEntries() []m.CatalogEntry {
	cases := testCatalog()
	out := make([]m.CatalogEntry, 0, len(cases)+1)

	for _, c := range cases {
		out = append(out, m.CatalogEntry{Case: c})
	}

	return append(out, m.CatalogEntry{Case: m.NewCase("s3", "r2_s3"), RequiresSecrets: true})
}

func newTestPlanner(t *testing.T) (Planner, *adaptermocks.MockCatalogAdapter) {
	t.Helper()

	catalog := adaptermocks.NewMockCatalogAdapter(t)
	classifier, err := NewClassifier(DefaultLayout(), nil)
	require.NoError(t, err)

	return NewPlanner(catalog, classifier, DefaultRunners(), nil), catalog
}

func TestPlanner_Plan_ServiceChange(t *testing.T) {
	// Arrange
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, m.Path(".github/services")).Return(catalogEntries(), nil)

	// Act
	res, err := p.Plan(context.Background(), PlanArgs{
		Changes:     paths("core/src/services/s3/core.rs"),
		ServicesDir: ".github/services",
	})

	// Assert
	require.NoError(t, err)

	assert.True(t, res.Surface.Core)
	assert.False(t, res.Surface.AllServices)
	assert.Equal(t, []string{"s3"}, res.Surface.ServiceList())

	core := res.Plan.Jobs[m.ComponentCore]
	require.Len(t, core, 1)
	assert.Equal(t, []m.Case{m.NewCase("s3", "aws_s3"), m.NewCase("s3", "minio_s3")}, core[0].Cases)

	for _, lang := range m.Languages {
		assert.True(t, res.Plan.Components[lang.Component()])
		groups := res.Plan.Jobs[lang.Component()]
		require.Len(t, groups, 1)
		assert.Equal(t, []m.Case{m.NewCase("s3", "aws_s3")}, groups[0].Cases)
	}
}

func TestPlanner_Plan_ReadmeOnly(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	res, err := p.Plan(context.Background(), PlanArgs{Changes: paths("README.md")})
	require.NoError(t, err)

	assert.False(t, res.Surface.Affected())

	for _, component := range m.Components() {
		assert.False(t, res.Plan.Components[component])
		assert.Empty(t, res.Plan.Jobs[component])
	}
}

func TestPlanner_Plan_FullWorkflow(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	res, err := p.Plan(context.Background(), PlanArgs{Changes: paths(".github/workflows/behavior_test.yml")})
	require.NoError(t, err)

	assert.True(t, res.Surface.AllServices)

	core := res.Plan.Jobs[m.ComponentCore]
	require.Len(t, core, 2)
	assert.Equal(t, testCatalog(), core[0].Cases)
	assert.Equal(t, "windows-latest", core[1].OS)

	for _, lang := range m.Languages {
		groups := res.Plan.Jobs[lang.Component()]
		require.Len(t, groups, 1)
		assert.Equal(t, UniqueByService(testCatalog()), groups[0].Cases)
	}
}

func TestPlanner_Plan_PushRunsEverything(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	res, err := p.Plan(context.Background(), PlanArgs{IsPush: true, HasSecrets: true})
	require.NoError(t, err)

	assert.False(t, res.Surface.Affected())
	assert.Len(t, res.Catalog, len(catalogEntries()))
	assert.Equal(t, res.Catalog, res.Plan.Jobs[m.ComponentCore][0].Cases)
	assert.Contains(t, res.Catalog, m.NewCase("s3", "r2_s3"))

	for _, component := range m.Components() {
		assert.True(t, res.Plan.Components[component])
	}
}

func TestPlanner_Plan_SecretGated(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	res, err := p.Plan(context.Background(), PlanArgs{IsPush: true, HasSecrets: false})
	require.NoError(t, err)

	assert.NotContains(t, res.Catalog, m.NewCase("s3", "r2_s3"))
	assert.Equal(t, testCatalog(), res.Catalog)
}

func TestPlanner_Plan_Deterministic(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	args := PlanArgs{Changes: paths(
		"core/src/services/fs/backend.rs",
		"bindings/python/src/lib.rs",
		".github/services/gcs/gcs/action.yml",
	)}

	var first []byte

	for i := range 5 {
		res, err := p.Plan(context.Background(), args)
		require.NoError(t, err)

		data, err := json.Marshal(res.Plan)
		require.NoError(t, err)

		if i == 0 {
			first = data

			continue
		}

		assert.Equal(t, string(first), string(data))
	}
}

func TestPlanner_Plan_DiscoverError(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := p.Plan(context.Background(), PlanArgs{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover catalog")
}

func TestPlanner_Hint_DoesNotReadCatalog(t *testing.T) {
	p, _ := newTestPlanner(t)

	s := p.Hint(PlanArgs{Changes: paths("bindings/java/pom.xml")})

	assert.True(t, s.Bindings[m.LanguageJava])
	assert.True(t, s.AllServices)
	assert.False(t, s.Core)
}

func TestPlanner_Cases_Gated(t *testing.T) {
	p, catalog := newTestPlanner(t)
	catalog.EXPECT().Discover(mock.Anything, mock.Anything).Return(catalogEntries(), nil)

	got, err := p.Cases(context.Background(), PlanArgs{HasSecrets: false})
	require.NoError(t, err)

	assert.Len(t, got, len(testCatalog()))
}
