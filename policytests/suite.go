package policytests

import (
	"net/http"

	"github.com/policyhub/policy-contract-tests/config"
	"github.com/policyhub/policy-contract-tests/framework"
)

// stepDefs is the whole step vocabulary of the suite, in one declarative
// table. Matching tries rows of the step's kind in this order and the first
// match wins.
func stepDefs() []framework.StepDef {
	return []framework.StepDef{
		{Kind: framework.Given, Pattern: `the API is available at {string}`, Handler: givenAPIAvailableAt},
		{Kind: framework.Given, Pattern: `a rule template {string} exists`, Handler: givenTemplateExists},
		{Kind: framework.Given, Pattern: `a rule template {string} exists with source:`, Handler: givenTemplateExistsWithSource},
		{Kind: framework.Given, Pattern: `a policy {string} exists using template {string}`, Handler: givenPolicyExists},

		{Kind: framework.When, Pattern: `I POST to {string} with:`, Handler: whenPostWith},
		{Kind: framework.When, Pattern: `I GET {string}`, Handler: whenGet},
		{Kind: framework.When, Pattern: `I fetch the rule template {string}`, Handler: whenFetchTemplate},
		{Kind: framework.When, Pattern: `I execute policy {string} with facts:`, Handler: whenExecutePolicy},

		{Kind: framework.Then, Pattern: `the response status should be {int}`, Handler: thenResponseStatus},
		{Kind: framework.Then, Pattern: `the response should contain {string}`, Handler: thenResponseContains},
		{Kind: framework.Then, Pattern: `the response field {string} should be {int}`, Handler: thenResponseFieldInt},
		{Kind: framework.Then, Pattern: `the response field {string} should be {string}`, Handler: thenResponseFieldString},
		{Kind: framework.Then, Pattern: `the response field {string} should be null`, Handler: thenResponseFieldNull},
		{Kind: framework.Then, Pattern: `the response should be a list`, Handler: thenResponseIsList},
		{Kind: framework.Then, Pattern: `the execution should succeed`, Handler: thenExecutionSucceeds},
		{Kind: framework.Then, Pattern: `the condition should be met`, Handler: thenConditionMet},
		{Kind: framework.Then, Pattern: `the condition should NOT be met`, Handler: thenConditionNotMet},
		{Kind: framework.Then, Pattern: `the output field {string} should be {int}`, Handler: thenOutputFieldInt},
		{Kind: framework.Then, Pattern: `the template document {string} should be persisted`, Handler: thenTemplatePersisted},
	}
}

// NewRegistry compiles the suite's step table.
func NewRegistry() *framework.Registry {
	return framework.MustNewRegistry(stepDefs())
}

// RunSuite executes the scenarios against the service named by cfg. One HTTP
// client serves the whole run; each scenario gets its own fresh World and is
// gated on service availability.
func RunSuite(
	cfg config.Config,
	scenarios []framework.Scenario,
	filter framework.Filter,
	logger framework.ScenarioLogger,
) framework.Results {
	client := &http.Client{}
	runner := &framework.Runner{
		Registry: NewRegistry(),
		NewState: func() interface{} { return newWorld(cfg, client) },
		BeforeScenario: func(c *framework.Context) {
			checkAvailability(c, cfg.APIBaseURL)
		},
		Filter: filter,
		Logger: logger,
	}
	return runner.Run(scenarios)
}
