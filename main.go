package main

import (
	"fmt"
	"os"

	"github.com/policyhub/policy-contract-tests/config"
	"github.com/policyhub/policy-contract-tests/framework"
	"github.com/policyhub/policy-contract-tests/policytests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg := config.Load()

	scenarios, err := framework.LoadFeatureDir(params.featuresDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load scenarios: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running %d scenarios against %s\n", len(scenarios), cfg.APIBaseURL)

	logger := &ConsoleScenarioLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := policytests.RunSuite(cfg, scenarios, params.filters.AsFilter, logger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		printRerunHint(os.Stderr, params, results)
		os.Exit(1)
	}
}
