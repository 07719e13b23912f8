package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFeatureString(t *testing.T, text string) []Scenario {
	scenarios, err := ParseFeature("test", strings.NewReader(text))
	require.NoError(t, err)
	return scenarios
}

func TestParseFeatureBasicScenario(t *testing.T) {
	scenarios := parseFeatureString(t, `
Feature: Policy execution

  Scenario: happy path
    Given a rule template "always-true" exists
    When I GET "/api/rule-templates"
    Then the response status should be 200
`)
	require.Len(t, scenarios, 1)
	s := scenarios[0]
	assert.Equal(t, "happy path", s.Name)
	assert.Equal(t, "test/happy path", s.ID.String())
	require.Len(t, s.Steps, 3)
	assert.Equal(t, Given, s.Steps[0].Kind)
	assert.Equal(t, `a rule template "always-true" exists`, s.Steps[0].Text)
	assert.Equal(t, When, s.Steps[1].Kind)
	assert.Equal(t, Then, s.Steps[2].Kind)
}

func TestParseFeatureAndButInheritKind(t *testing.T) {
	scenarios := parseFeatureString(t, `
Scenario: chained steps
  Given a rule template "a" exists
  And a rule template "b" exists
  Then the response status should be 201
  But the response should contain "id"
`)
	steps := scenarios[0].Steps
	require.Len(t, steps, 4)
	assert.Equal(t, Given, steps[1].Kind)
	assert.Equal(t, `a rule template "b" exists`, steps[1].Text)
	assert.Equal(t, Then, steps[3].Kind)
}

func TestParseFeatureDocString(t *testing.T) {
	scenarios := parseFeatureString(t, `
Scenario: with block
  When I POST to "/api/execute" with:
    """
    {
      "policy_id": "p1"
    }
    """
  Then the response status should be 200
`)
	steps := scenarios[0].Steps
	require.Len(t, steps, 2)
	require.True(t, steps[0].HasDocString)
	assert.Equal(t, "{\n  \"policy_id\": \"p1\"\n}", steps[0].DocString)
	assert.False(t, steps[1].HasDocString)
}

func TestParseFeatureBackgroundPrependsSteps(t *testing.T) {
	scenarios := parseFeatureString(t, `
Feature: backgrounds

Background:
  Given a rule template "base" exists

Scenario: first
  When I GET "/api/policies"

Scenario: second
  When I GET "/api/rule-templates"
`)
	require.Len(t, scenarios, 2)
	for _, s := range scenarios {
		require.Len(t, s.Steps, 2)
		assert.Equal(t, Given, s.Steps[0].Kind)
		assert.Equal(t, `a rule template "base" exists`, s.Steps[0].Text)
	}
	assert.Equal(t, `I GET "/api/policies"`, scenarios[0].Steps[1].Text)
	assert.Equal(t, `I GET "/api/rule-templates"`, scenarios[1].Steps[1].Text)
}

func TestParseFeatureSkipsCommentsAndBlankLines(t *testing.T) {
	scenarios := parseFeatureString(t, `
# harness smoke test

Scenario: commented
  # establishes the template
  Given a rule template "a" exists
`)
	require.Len(t, scenarios, 1)
	assert.Len(t, scenarios[0].Steps, 1)
}

func TestParseFeatureErrors(t *testing.T) {
	for name, text := range map[string]string{
		"step before scenario": "Given a rule template \"a\" exists\n",
		"and without antecedent": `
Scenario: dangling
  And a rule template "a" exists
`,
		"unterminated docstring": `
Scenario: open fence
  When I POST to "/x" with:
    """
    {}
`,
		"background after scenario": `
Scenario: early
  When I GET "/x"
Background:
  Given a rule template "a" exists
`,
		"nameless scenario": "Scenario:\n",
		"unknown keyword": `
Scenario: odd
  Whence I GET "/x"
`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFeature("bad", strings.NewReader(text))
			assert.Error(t, err)
		})
	}
}
