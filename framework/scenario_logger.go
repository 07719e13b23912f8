package framework

// ScenarioLogger receives progress events as the Runner works through the
// scenario list. The console implementation lives in the main package.
type ScenarioLogger interface {
	ScenarioStarted(id ScenarioID)
	ScenarioError(id ScenarioID, err error)
	ScenarioFinished(id ScenarioID, failed bool, debugOutput CapturedOutput)
	ScenarioSkipped(id ScenarioID, reason string)
}

type nullScenarioLogger struct{}

func (n nullScenarioLogger) ScenarioStarted(ScenarioID)                        {}
func (n nullScenarioLogger) ScenarioError(ScenarioID, error)                   {}
func (n nullScenarioLogger) ScenarioFinished(ScenarioID, bool, CapturedOutput) {}
func (n nullScenarioLogger) ScenarioSkipped(ScenarioID, string)                {}

func NullScenarioLogger() ScenarioLogger { return nullScenarioLogger{} }
