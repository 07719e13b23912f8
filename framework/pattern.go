package framework

import (
	"fmt"
	"strconv"
	"strings"
)

// StepPattern is an immutable step template: literal text interleaved with
// typed placeholders. Supported placeholders are {string}, which matches a
// double-quoted span and extracts its content, and {int}, which matches an
// optionally-signed digit run. A pattern whose source ends in ":" declares
// that the step carries a trailing docstring block; the block is passed to
// the handler verbatim and is not part of the matched line.
type StepPattern struct {
	source   string
	segments []patternSegment
	wantsDoc bool
}

type patternSegment struct {
	kind segmentKind
	text string // literal text; empty for placeholder segments
}

type segmentKind int

const (
	literalSegment segmentKind = iota
	stringSegment
	intSegment
)

func CompilePattern(source string) (StepPattern, error) {
	p := StepPattern{source: source}
	body := source
	if strings.HasSuffix(body, ":") {
		// the colon stays in the literal text; it appears in the step line too
		p.wantsDoc = true
	}
	for body != "" {
		open := strings.Index(body, "{")
		if open < 0 {
			p.segments = append(p.segments, patternSegment{kind: literalSegment, text: body})
			break
		}
		if open > 0 {
			p.segments = append(p.segments, patternSegment{kind: literalSegment, text: body[:open]})
		}
		closing := strings.Index(body[open:], "}")
		if closing < 0 {
			return StepPattern{}, fmt.Errorf("unterminated placeholder in pattern %q", source)
		}
		token := body[open+1 : open+closing]
		switch token {
		case "string":
			p.segments = append(p.segments, patternSegment{kind: stringSegment})
		case "int":
			p.segments = append(p.segments, patternSegment{kind: intSegment})
		default:
			return StepPattern{}, fmt.Errorf("unknown placeholder {%s} in pattern %q", token, source)
		}
		body = body[open+closing+1:]
	}
	return p, nil
}

func MustCompilePattern(source string) StepPattern {
	p, err := CompilePattern(source)
	if err != nil {
		panic(err)
	}
	return p
}

func (p StepPattern) Source() string { return p.source }

// WantsDocString reports whether steps matching this pattern must carry a
// trailing docstring block.
func (p StepPattern) WantsDocString() bool { return p.wantsDoc }

// Match attempts to bind the step text against the pattern, returning the
// extracted placeholder values. The entire text must be consumed.
func (p StepPattern) Match(text string) (StepArgs, bool) {
	var args StepArgs
	rest := text
	for _, seg := range p.segments {
		switch seg.kind {
		case literalSegment:
			if !strings.HasPrefix(rest, seg.text) {
				return StepArgs{}, false
			}
			rest = rest[len(seg.text):]
		case stringSegment:
			if !strings.HasPrefix(rest, `"`) {
				return StepArgs{}, false
			}
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				return StepArgs{}, false
			}
			args.values = append(args.values, rest[1:1+end])
			rest = rest[end+2:]
		case intSegment:
			digits := 0
			i := 0
			if strings.HasPrefix(rest, "-") {
				i = 1
			}
			for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
				i++
				digits++
			}
			if digits == 0 {
				return StepArgs{}, false
			}
			n, err := strconv.Atoi(rest[:i])
			if err != nil {
				return StepArgs{}, false
			}
			args.values = append(args.values, n)
			rest = rest[i:]
		}
	}
	if rest != "" {
		return StepArgs{}, false
	}
	return args, true
}

// StepArgs holds the placeholder values extracted from one matched step, in
// placeholder order, plus the step's docstring block when present.
type StepArgs struct {
	values []interface{}
	doc    string
	hasDoc bool
}

// String returns the i'th extracted value as a string. It panics if the
// placeholder at that position was not {string}; the step table fixes the
// handler arity so a mismatch is an authoring error, not a runtime one.
func (a StepArgs) String(i int) string {
	return a.values[i].(string)
}

// Int returns the i'th extracted value as an int.
func (a StepArgs) Int(i int) int {
	return a.values[i].(int)
}

func (a StepArgs) Count() int { return len(a.values) }

func (a StepArgs) DocString() string { return a.doc }

func (a StepArgs) HasDocString() bool { return a.hasDoc }
