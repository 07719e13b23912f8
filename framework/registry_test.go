package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(c *Context, args StepArgs) {}

func TestRegistryMatchesByKind(t *testing.T) {
	var invoked string
	r := MustNewRegistry([]StepDef{
		{Kind: Given, Pattern: `a thing {string} exists`, Handler: func(c *Context, args StepArgs) { invoked = "given" }},
		{Kind: Then, Pattern: `a thing {string} exists`, Handler: func(c *Context, args StepArgs) { invoked = "then" }},
	})

	handler, args, err := r.Match(Step{Kind: Then, Text: `a thing "x" exists`})
	require.NoError(t, err)
	assert.Equal(t, "x", args.String(0))
	handler(nil, args)
	assert.Equal(t, "then", invoked, "only patterns of the step's kind are candidates")
}

func TestRegistryUnrecognizedStep(t *testing.T) {
	r := MustNewRegistry([]StepDef{
		{Kind: When, Pattern: `I GET {string}`, Handler: noopHandler},
	})

	_, _, err := r.Match(Step{Kind: When, Text: `I DELETE "/api/policies/p1"`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized step")
	assert.Contains(t, err.Error(), `I DELETE "/api/policies/p1"`, "the error must name the unmatched text")
}

func TestRegistryFirstMatchWins(t *testing.T) {
	var invoked string
	r := MustNewRegistry([]StepDef{
		{Kind: Then, Pattern: `the value should be {string}`, Handler: func(c *Context, args StepArgs) { invoked = "first" }},
		{Kind: Then, Pattern: `the value should be {string}`, Handler: func(c *Context, args StepArgs) { invoked = "second" }},
	})

	handler, args, err := r.Match(Step{Kind: Then, Text: `the value should be "x"`})
	require.NoError(t, err)
	handler(nil, args)
	assert.Equal(t, "first", invoked, "overlapping patterns dispatch to the earliest table row")
}

func TestRegistryDocStringSelectsDocPatterns(t *testing.T) {
	var invoked string
	r := MustNewRegistry([]StepDef{
		{Kind: Given, Pattern: `a rule template {string} exists`, Handler: func(c *Context, args StepArgs) { invoked = "plain" }},
		{Kind: Given, Pattern: `a rule template {string} exists with source:`, Handler: func(c *Context, args StepArgs) { invoked = "doc" }},
	})

	handler, args, err := r.Match(Step{
		Kind:         Given,
		Text:         `a rule template "x" exists with source:`,
		DocString:    "rule source",
		HasDocString: true,
	})
	require.NoError(t, err)
	require.True(t, args.HasDocString())
	assert.Equal(t, "rule source", args.DocString())
	handler(nil, args)
	assert.Equal(t, "doc", invoked)

	// a step without a block must not reach a docstring pattern
	_, _, err = r.Match(Step{Kind: Given, Text: `a rule template "x" exists with source:`})
	assert.Error(t, err)
}

func TestRegistryRejectsBadTable(t *testing.T) {
	_, err := NewRegistry([]StepDef{
		{Kind: Given, Pattern: `a broken {placeholder}`, Handler: noopHandler},
	})
	assert.Error(t, err)

	_, err = NewRegistry([]StepDef{
		{Kind: Given, Pattern: `fine pattern`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}
