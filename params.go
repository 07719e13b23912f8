package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/policyhub/policy-contract-tests/framework"
)

const defaultFeaturesDir = "features"

type commandParams struct {
	featuresDir string
	filters     framework.RegexFilters
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.featuresDir, "features", defaultFeaturesDir, "directory containing .feature scenario files")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

func printRerunHint(dest io.Writer, params commandParams, results framework.Results) {
	var b commandBuilder
	b.add(os.Args[0], "-features", params.featuresDir)
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.ScenarioID.String())+"$")
	}
	fmt.Fprintf(dest, "\nTo rerun only the failed scenarios: %s\n", b)
}
