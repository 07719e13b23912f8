package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Context is the mutable per-scenario execution state. One Context is created
// at the start of each scenario and discarded at the end; it is never shared
// between scenarios. Step handlers receive the Context, read and mutate the
// domain state attached to it, and report failures through it.
//
// FailNow and Skip unwind the current handler with a panic that the Runner
// recovers, in the same way Go's testing.T.FailNow works.
type Context struct {
	id          ScenarioID
	state       interface{}
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	logger      ScenarioLogger
}

func (c *Context) ID() ScenarioID {
	return c.id
}

// State returns the per-scenario domain state that the suite's state
// constructor produced. The domain package type-asserts it back.
func (c *Context) State() interface{} {
	return c.state
}

// Errorf records a failure but allows the current handler to continue.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.logger.ScenarioError(c.id, err)
}

// FailNow aborts the current handler and all remaining steps of the scenario.
func (c *Context) FailNow() {
	panic(c)
}

// Fatalf is Errorf followed by FailNow.
func (c *Context) Fatalf(format string, args ...interface{}) {
	c.Errorf(format, args...)
	c.FailNow()
}

// Skip marks the scenario as skipped rather than failed and aborts it.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug writes to the captured debug log for this scenario.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// perform runs an action with the panic-recovery protocol shared by the
// pre-scenario hook and step execution.
func (c *Context) perform(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("scenario failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in step handler: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.logger.ScenarioError(c.id, addError)
			}
		}
	}()

	action(c)
}
