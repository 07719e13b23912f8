package framework

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Step is one line of scenario text, already classified by kind. And/But
// lines are resolved to the kind of the step they continue at load time.
type Step struct {
	Kind         StepKind
	Text         string
	DocString    string
	HasDocString bool
	Line         int
}

// Scenario is one end-to-end sequence of steps. Background steps from the
// enclosing feature are already prepended.
type Scenario struct {
	ID    ScenarioID
	Name  string
	Steps []Step
}

// ParseFeature reads one feature file's worth of scenario text. The reader
// understands just enough structure to split scenarios into typed step
// lines: a Feature header, an optional Background block whose steps are
// prepended to every scenario, Scenario blocks, Given/When/Then/And/But
// lines, triple-quote docstring fences, comments, and blank lines. Anything
// else is a load error.
func ParseFeature(sourceName string, r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	var background []Step
	var current *[]Step
	var lastKind StepKind
	haveLastKind := false
	inBackground := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0

	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%s:%d: %s", sourceName, lineNum, fmt.Sprintf(format, args...))
	}

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue

		case strings.HasPrefix(line, "Feature:"):
			continue

		case strings.HasPrefix(line, "Background:"):
			if len(scenarios) > 0 {
				return nil, fail("Background must precede all scenarios")
			}
			inBackground = true
			haveLastKind = false

		case strings.HasPrefix(line, "Scenario:"):
			name := strings.TrimSpace(strings.TrimPrefix(line, "Scenario:"))
			if name == "" {
				return nil, fail("scenario has no name")
			}
			scenarios = append(scenarios, Scenario{
				ID:    ScenarioID{Path: []string{sourceName, name}},
				Name:  name,
				Steps: append([]Step(nil), background...),
			})
			current = &scenarios[len(scenarios)-1].Steps
			inBackground = false
			haveLastKind = false

		case strings.HasPrefix(line, `"""`):
			var target *[]Step
			if inBackground {
				target = &background
			} else {
				target = current
			}
			if target == nil || len(*target) == 0 {
				return nil, fail("docstring block has no preceding step")
			}
			last := &(*target)[len(*target)-1]
			if last.HasDocString {
				return nil, fail("step already has a docstring block")
			}
			doc, consumed, err := readDocString(scanner, raw)
			if err != nil {
				return nil, fail("%s", err)
			}
			lineNum += consumed
			last.DocString = doc
			last.HasDocString = true

		default:
			kind, text, err := splitStepLine(line, lastKind, haveLastKind)
			if err != nil {
				return nil, fail("%s", err)
			}
			lastKind = kind
			haveLastKind = true
			step := Step{Kind: kind, Text: text, Line: lineNum}
			if inBackground {
				background = append(background, step)
			} else if current != nil {
				(*current) = append(*current, step)
			} else {
				return nil, fail("step %q appears before any scenario", line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", sourceName, err)
	}
	return scenarios, nil
}

func splitStepLine(line string, lastKind StepKind, haveLastKind bool) (StepKind, string, error) {
	keyword, rest, found := strings.Cut(line, " ")
	if !found {
		return 0, "", fmt.Errorf("malformed step line %q", line)
	}
	rest = strings.TrimSpace(rest)
	switch keyword {
	case "Given":
		return Given, rest, nil
	case "When":
		return When, rest, nil
	case "Then":
		return Then, rest, nil
	case "And", "But":
		if !haveLastKind {
			return 0, "", fmt.Errorf("%q continues no preceding step", line)
		}
		return lastKind, rest, nil
	}
	return 0, "", fmt.Errorf("unrecognized step keyword in line %q", line)
}

// readDocString consumes lines up to the closing fence. The opening fence's
// indentation is stripped from each content line, so that feature-file
// formatting does not leak into JSON bodies or rule sources.
func readDocString(scanner *bufio.Scanner, openingLine string) (string, int, error) {
	indent := openingLine[:strings.Index(openingLine, `"""`)]
	var lines []string
	consumed := 0
	for scanner.Scan() {
		consumed++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == `"""` {
			return strings.Join(lines, "\n"), consumed, nil
		}
		lines = append(lines, strings.TrimPrefix(raw, indent))
	}
	return "", consumed, fmt.Errorf("unterminated docstring block")
}

// LoadFeatureDir reads every .feature file in a directory, in name order so
// that runs are reproducible.
func LoadFeatureDir(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".feature") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no .feature files found in %s", dir)
	}

	var all []Scenario
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios, err := ParseFeature(strings.TrimSuffix(name, ".feature"), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}
	return all, nil
}
