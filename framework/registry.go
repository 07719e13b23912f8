package framework

import (
	"fmt"
)

// StepKind classifies a step as a precondition, an action, or an assertion.
type StepKind int

const (
	Given StepKind = iota
	When
	Then
)

func (k StepKind) String() string {
	switch k {
	case Given:
		return "Given"
	case When:
		return "When"
	case Then:
		return "Then"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// HandlerFunc is the common signature of all step handlers: it receives the
// scenario Context and the extracted arguments, and either mutates the
// context state or fails the context. Handlers return nothing.
type HandlerFunc func(c *Context, args StepArgs)

// StepDef is one row of the declarative step table.
type StepDef struct {
	Kind    StepKind
	Pattern string
	Handler HandlerFunc
}

type compiledDef struct {
	kind    StepKind
	pattern StepPattern
	handler HandlerFunc
}

// Registry holds the compiled step table. All registration happens up front,
// from a single table; patterns are tried in table order and the first match
// wins, so dispatch is deterministic even if two patterns overlap.
type Registry struct {
	defs []compiledDef
}

func NewRegistry(defs []StepDef) (*Registry, error) {
	r := &Registry{}
	for _, d := range defs {
		if d.Handler == nil {
			return nil, fmt.Errorf("step pattern %q has no handler", d.Pattern)
		}
		p, err := CompilePattern(d.Pattern)
		if err != nil {
			return nil, err
		}
		r.defs = append(r.defs, compiledDef{kind: d.Kind, pattern: p, handler: d.Handler})
	}
	return r, nil
}

func MustNewRegistry(defs []StepDef) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Match finds the handler for a step line. Only patterns of the step's kind
// are candidates, and a step with a docstring block only matches patterns
// that declare one (and vice versa). No match is an error naming the text.
func (r *Registry) Match(step Step) (HandlerFunc, StepArgs, error) {
	for _, d := range r.defs {
		if d.kind != step.Kind || d.pattern.WantsDocString() != step.HasDocString {
			continue
		}
		if args, ok := d.pattern.Match(step.Text); ok {
			if step.HasDocString {
				args.doc = step.DocString
				args.hasDoc = true
			}
			return d.handler, args, nil
		}
	}
	return nil, StepArgs{}, fmt.Errorf("unrecognized step: %s %q", step.Kind, step.Text)
}
