package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan_EmptyListsNotNull(t *testing.T) {
	data, err := json.Marshal(NewPlan())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"components": {
			"core": false,
			"binding_java": false,
			"binding_python": false,
			"binding_nodejs": false
		},
		"core": [],
		"binding_java": [],
		"binding_python": [],
		"binding_nodejs": []
	}`, string(data))
}

func TestPlan_MarshalJSON_CaseFieldOrder(t *testing.T) {
	plan := NewPlan()
	plan.Components[ComponentCore] = true
	plan.Jobs[ComponentCore] = []JobGroup{{OS: "ubuntu-latest", Cases: []Case{NewCase("fs", "local_fs")}}}

	data, err := json.Marshal(plan)
	require.NoError(t, err)

	assert.Contains(t, string(data),
		`"core":[{"os":"ubuntu-latest","cases":[{"setup":"local_fs","service":"fs","feature":"services-fs"}]}]`)
}

func TestPlan_MarshalJSON_Deterministic(t *testing.T) {
	plan := NewPlan()
	plan.Components[LanguageJava.Component()] = true
	plan.Jobs[LanguageJava.Component()] = []JobGroup{{OS: "ubuntu-latest", Cases: []Case{NewCase("s3", "aws_s3")}}}

	first, err := json.Marshal(plan)
	require.NoError(t, err)

	for range 20 {
		again, err := json.Marshal(plan)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestPlan_CaseCount(t *testing.T) {
	plan := NewPlan()
	plan.Jobs[ComponentCore] = []JobGroup{
		{OS: "ubuntu-latest", Cases: []Case{NewCase("fs", "local_fs"), NewCase("s3", "aws_s3")}},
		{OS: "windows-latest", Cases: []Case{NewCase("fs", "local_fs")}},
	}

	assert.Equal(t, 3, plan.CaseCount(ComponentCore))
	assert.Equal(t, 0, plan.CaseCount(LanguageJava.Component()))
}
