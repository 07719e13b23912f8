package framework

// Runner executes scenarios strictly sequentially. Each scenario gets a
// fresh Context and a fresh domain state from NewState; one step's handler
// runs to completion before the next step is dispatched, and a failure
// aborts the remaining steps of that scenario only.
type Runner struct {
	Registry *Registry

	// NewState constructs the per-scenario domain state attached to the
	// Context. Required.
	NewState func() interface{}

	// BeforeScenario runs ahead of every scenario's steps, on the scenario's
	// own Context. It may skip or fail the scenario; the availability gate
	// lives here. Optional.
	BeforeScenario func(c *Context)

	Filter Filter
	Logger ScenarioLogger
}

func (r *Runner) Run(scenarios []Scenario) Results {
	logger := r.Logger
	if logger == nil {
		logger = nullScenarioLogger{}
	}

	var results Results
	for _, scenario := range scenarios {
		logger.ScenarioStarted(scenario.ID)
		if r.Filter != nil && !r.Filter(scenario.ID) {
			logger.ScenarioSkipped(scenario.ID, "excluded by filter parameters")
			continue
		}

		c := &Context{
			id:     scenario.ID,
			state:  r.NewState(),
			logger: logger,
		}
		r.runScenario(c, scenario)

		result := ScenarioResult{
			ScenarioID: c.id,
			Errors:     c.errors,
			Skipped:    c.skipped,
			SkipReason: c.skipReason,
		}
		results.Scenarios = append(results.Scenarios, result)
		switch {
		case c.skipped:
			results.Skipped = append(results.Skipped, result)
			logger.ScenarioSkipped(c.id, c.skipReason)
		case c.failed:
			results.Failures = append(results.Failures, result)
			logger.ScenarioFinished(c.id, true, c.debugLogger.Output())
		default:
			logger.ScenarioFinished(c.id, false, c.debugLogger.Output())
		}
	}
	return results
}

func (r *Runner) runScenario(c *Context, scenario Scenario) {
	c.perform(func(c *Context) {
		if r.BeforeScenario != nil {
			r.BeforeScenario(c)
		}
		for _, step := range scenario.Steps {
			handler, args, err := r.Registry.Match(step)
			if err != nil {
				c.Fatalf("%s", err)
			}
			c.Debug("step: %s %s", step.Kind, step.Text)
			handler(c, args)
			if c.failed {
				// a recorded failure aborts the remaining steps, FailNow or not
				return
			}
		}
	})
}
