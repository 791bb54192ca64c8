package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/impactplan/internal/model"
)

func TestAssemble_Empty(t *testing.T) {
	plan := Assemble([]m.Case{}, map[m.Language][]m.Case{}, DefaultRunners())

	for _, component := range m.Components() {
		assert.False(t, plan.Components[component], "component %s", component)
		assert.NotNil(t, plan.Jobs[component])
		assert.Empty(t, plan.Jobs[component])
	}
}

func TestAssemble_CoreWithoutFS(t *testing.T) {
	core := casesOf(testCatalog(), "s3")

	plan := Assemble(core, nil, DefaultRunners())

	assert.True(t, plan.Components[m.ComponentCore])
	require.Len(t, plan.Jobs[m.ComponentCore], 1)
	assert.Equal(t, "ubuntu-latest", plan.Jobs[m.ComponentCore][0].OS)
	assert.Equal(t, core, plan.Jobs[m.ComponentCore][0].Cases)
}

func TestAssemble_FSAddsWindowsGroup(t *testing.T) {
	core := testCatalog() // contains two fs setups

	plan := Assemble(core, nil, DefaultRunners())

	groups := plan.Jobs[m.ComponentCore]
	require.Len(t, groups, 2)
	assert.Equal(t, "ubuntu-latest", groups[0].OS)
	assert.Equal(t, core, groups[0].Cases)
	assert.Equal(t, "windows-latest", groups[1].OS)
	assert.Equal(t, []m.Case{{Setup: "local_fs", Service: "fs", Feature: "services-fs"}}, groups[1].Cases)
}

func TestAssemble_FSWindowsCaseIsFixed(t *testing.T) {
	// Only a non-default fs setup was selected; the windows job still runs local_fs.
	core := []m.Case{m.NewCase("fs", "local_fs_with_tmp")}

	plan := Assemble(core, nil, DefaultRunners())

	groups := plan.Jobs[m.ComponentCore]
	require.Len(t, groups, 2)
	assert.Equal(t, []m.Case{m.NewCase("fs", "local_fs")}, groups[1].Cases)
}

func TestAssemble_FSInBindingsOnly(t *testing.T) {
	bindings := map[m.Language][]m.Case{
		m.LanguageJava: {m.NewCase("fs", "local_fs")},
	}

	plan := Assemble(nil, bindings, DefaultRunners())

	assert.False(t, plan.Components[m.ComponentCore])
	assert.Empty(t, plan.Jobs[m.ComponentCore])
	require.Len(t, plan.Jobs[m.LanguageJava.Component()], 1)
}

func TestAssemble_Bindings(t *testing.T) {
	bindings := map[m.Language][]m.Case{
		m.LanguageJava:   {m.NewCase("s3", "aws_s3")},
		m.LanguagePython: {},
	}

	runners := Runners{Default: "self-hosted", Windows: "windows-2022"}
	plan := Assemble(nil, bindings, runners)

	assert.True(t, plan.Components[m.LanguageJava.Component()])
	assert.Equal(t, []m.JobGroup{{OS: "self-hosted", Cases: []m.Case{m.NewCase("s3", "aws_s3")}}}, plan.Jobs[m.LanguageJava.Component()])
	assert.False(t, plan.Components[m.LanguagePython.Component()])
	assert.Empty(t, plan.Jobs[m.LanguagePython.Component()])
	assert.False(t, plan.Components[m.LanguageNodejs.Component()])
}

func TestAssemble_ComponentFlagMatchesJobs(t *testing.T) {
	bindings := map[m.Language][]m.Case{m.LanguageNodejs: casesOf(testCatalog(), "gcs")}
	plan := Assemble(casesOf(testCatalog(), "fs"), bindings, DefaultRunners())

	for _, component := range m.Components() {
		if plan.Components[component] {
			assert.Positive(t, plan.CaseCount(component), "component %s", component)
		} else {
			assert.Empty(t, plan.Jobs[component], "component %s", component)
		}
	}
}
