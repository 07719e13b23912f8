// Package framework contains the scenario-execution engine of the harness,
// independent of what service is being tested.
//
// The general model is:
//
// 1. Scenario text is read from feature files into a list of Scenarios, each
// a sequence of Given/When/Then steps with optional docstring blocks.
//
// 2. A declarative table of step patterns is compiled into a Registry. Each
// pattern contains literal text plus typed placeholders, and is bound to a
// handler function.
//
// 3. The Runner executes scenarios one at a time. Each scenario gets a
// Context, which is similar to Go's *testing.T: it owns the per-scenario
// state, accumulates failures, and supports skipping. The Runner matches
// each step line against the Registry and invokes the bound handler with
// the Context and the extracted arguments.
//
// The domain-specific code that knows what is being tested provides the step
// table, the per-scenario state constructor, and a pre-scenario hook (used
// for the service availability gate).
package framework
