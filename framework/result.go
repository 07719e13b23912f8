package framework

import (
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Scenarios []ScenarioResult
	Failures  []ScenarioResult
	Skipped   []ScenarioResult
}

type ScenarioResult struct {
	ScenarioID ScenarioID
	Errors     []error
	Skipped    bool
	SkipReason string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type ScenarioID struct {
	Path []string
}

func (s ScenarioID) String() string {
	return strings.Join(s.Path, "/")
}

type ScenarioFailure struct {
	ID  ScenarioID
	Err error
}

func (f ScenarioFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes the end-of-run summary. Skipped scenarios are counted
// separately and never affect the pass/fail outcome.
func PrintResults(dest io.Writer, results Results) {
	passed := len(results.Scenarios) - len(results.Failures) - len(results.Skipped)
	fmt.Fprintf(dest, "Scenarios: %d passed, %d failed, %d skipped\n",
		passed, len(results.Failures), len(results.Skipped))

	if len(results.Failures) > 0 {
		fmt.Fprintln(dest)
		fmt.Fprintln(dest, "FAILED SCENARIOS:")
		for _, f := range results.Failures {
			fmt.Fprintf(dest, "* %s\n", f.ScenarioID)
			for _, err := range f.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(dest, "    %s\n", line)
				}
			}
		}
	}
}
