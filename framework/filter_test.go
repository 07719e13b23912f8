package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	id := func(s string) ScenarioID { return ScenarioID{Path: []string{s}} }

	var empty RegexFilters
	assert.True(t, empty.AsFilter(id("anything")))

	var onlyExecution RegexFilters
	require.NoError(t, onlyExecution.MustMatch.Set("^execution/"))
	assert.True(t, onlyExecution.AsFilter(ScenarioID{Path: []string{"execution", "happy path"}}))
	assert.False(t, onlyExecution.AsFilter(ScenarioID{Path: []string{"policies", "happy path"}}))

	var skipPersisted RegexFilters
	require.NoError(t, skipPersisted.MustNotMatch.Set("persisted"))
	assert.False(t, skipPersisted.AsFilter(id("template document is persisted")))
	assert.True(t, skipPersisted.AsFilter(id("other")))

	var bad RegexList
	assert.Error(t, bad.Set("("))
}
