package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMatchesLiteralText(t *testing.T) {
	p := MustCompilePattern(`the response should be a list`)

	args, ok := p.Match("the response should be a list")
	require.True(t, ok)
	assert.Equal(t, 0, args.Count())

	_, ok = p.Match("the response should be a list of things")
	assert.False(t, ok, "pattern must consume the whole step text")

	_, ok = p.Match("the response should be a")
	assert.False(t, ok)
}

func TestPatternExtractsStringPlaceholder(t *testing.T) {
	p := MustCompilePattern(`a rule template {string} exists`)

	args, ok := p.Match(`a rule template "always-true" exists`)
	require.True(t, ok)
	require.Equal(t, 1, args.Count())
	assert.Equal(t, "always-true", args.String(0))
}

func TestPatternStringPlaceholderRequiresQuotes(t *testing.T) {
	p := MustCompilePattern(`a rule template {string} exists`)

	_, ok := p.Match(`a rule template always-true exists`)
	assert.False(t, ok, "unquoted span must not match {string}")

	_, ok = p.Match(`a rule template "unterminated exists`)
	assert.False(t, ok, "unclosed quote must not match")
}

func TestPatternExtractsIntPlaceholder(t *testing.T) {
	p := MustCompilePattern(`the response status should be {int}`)

	args, ok := p.Match("the response status should be 201")
	require.True(t, ok)
	assert.Equal(t, 201, args.Int(0))

	args, ok = p.Match("the response status should be -1")
	require.True(t, ok)
	assert.Equal(t, -1, args.Int(0))

	_, ok = p.Match("the response status should be created")
	assert.False(t, ok, "non-integer text must not match {int}")

	_, ok = p.Match("the response status should be -")
	assert.False(t, ok)
}

func TestPatternExtractsMultiplePlaceholders(t *testing.T) {
	p := MustCompilePattern(`a policy {string} exists using template {string}`)

	args, ok := p.Match(`a policy "p1" exists using template "always-true"`)
	require.True(t, ok)
	require.Equal(t, 2, args.Count())
	assert.Equal(t, "p1", args.String(0))
	assert.Equal(t, "always-true", args.String(1))
}

func TestPatternMixedPlaceholderTypes(t *testing.T) {
	p := MustCompilePattern(`the response field {string} should be {int}`)

	args, ok := p.Match(`the response field "count" should be 3`)
	require.True(t, ok)
	assert.Equal(t, "count", args.String(0))
	assert.Equal(t, 3, args.Int(1))
}

func TestPatternWithTrailingColonWantsDocString(t *testing.T) {
	p := MustCompilePattern(`I POST to {string} with:`)
	assert.True(t, p.WantsDocString())

	args, ok := p.Match(`I POST to "/api/execute" with:`)
	require.True(t, ok)
	assert.Equal(t, "/api/execute", args.String(0))

	plain := MustCompilePattern(`I GET {string}`)
	assert.False(t, plain.WantsDocString())
}

func TestPatternCompileErrors(t *testing.T) {
	_, err := CompilePattern(`value is {number}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{number}")

	_, err = CompilePattern(`value is {string`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

func TestPatternEmptyQuotedString(t *testing.T) {
	p := MustCompilePattern(`the response should contain {string}`)

	args, ok := p.Match(`the response should contain ""`)
	require.True(t, ok)
	assert.Equal(t, "", args.String(0))
}
