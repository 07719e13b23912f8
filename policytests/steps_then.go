package policytests

import (
	"bytes"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/policyhub/policy-contract-tests/framework"
	"github.com/policyhub/policy-contract-tests/store"
)

func thenResponseStatus(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	w.requireResponse(c)
	want := args.Int(0)
	if w.LastResponse.StatusCode != want {
		c.Fatalf("expected status %d, got %d: %s", want, w.LastResponse.StatusCode, w.LastBody)
	}
}

func thenResponseContains(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	w.requireResponse(c)
	text := args.String(0)
	if !bytes.Contains(w.LastBody, []byte(text)) {
		c.Fatalf("response body does not contain %q: %s", text, w.LastBody)
	}
}

func thenResponseFieldInt(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	field, want := args.String(0), args.Int(1)
	got := w.responseObject(c).GetByKey(field)
	if got.Type() != ldvalue.NumberType || got.IntValue() != want {
		c.Fatalf("expected field %q to be %d, got %s", field, want, got.JSONString())
	}
}

func thenResponseFieldString(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	field, want := args.String(0), args.String(1)
	got := w.responseObject(c).GetByKey(field)
	if got.Type() != ldvalue.StringType || got.StringValue() != want {
		c.Fatalf("expected field %q to be %q, got %s", field, want, got.JSONString())
	}
}

func thenResponseFieldNull(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	field := args.String(0)
	// an absent field counts as null
	got, found := w.responseObject(c).TryGetByKey(field)
	if found && !got.IsNull() {
		c.Fatalf("expected field %q to be null, got %s", field, got.JSONString())
	}
}

func thenResponseIsList(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	w.requireResponse(c)
	if w.LastJSON.Type() != ldvalue.ArrayType {
		c.Fatalf("response is not a list: %s", w.LastBody)
	}
}

func thenExecutionSucceeds(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	success := w.responseObject(c).GetByKey("success")
	if success.Type() != ldvalue.BoolType || !success.BoolValue() {
		c.Fatalf("execution failed: %s", w.LastBody)
	}
}

func thenConditionMet(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	met := w.responseObject(c).GetByKey("condition_met")
	if met.Type() != ldvalue.BoolType || !met.BoolValue() {
		c.Fatalf("condition not met: %s", w.LastBody)
	}
}

func thenConditionNotMet(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	met := w.responseObject(c).GetByKey("condition_met")
	if met.Type() != ldvalue.BoolType || met.BoolValue() {
		c.Fatalf("condition unexpectedly met: %s", w.LastBody)
	}
}

func thenOutputFieldInt(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	field, want := args.String(0), args.Int(1)
	output := w.responseObject(c).GetByKey("output_facts")
	if output.Type() != ldvalue.ObjectType {
		c.Fatalf("output_facts not found in response: %s", w.LastBody)
	}
	got := output.GetByKey(field)
	if got.Type() != ldvalue.NumberType || got.IntValue() != want {
		c.Fatalf("expected output field %q to be %d, got %s", field, want, got.JSONString())
	}
}

// thenTemplatePersisted verifies out-of-band that the created template was
// written to the datastore. Without datastore support compiled in, the
// scenario skips; with it compiled in, an unreachable datastore is a real
// environment defect and fails hard.
func thenTemplatePersisted(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	name := args.String(0)
	if !store.Available() {
		c.SkipWithReason("Couchbase SDK not installed - skipping DB validation")
	}
	id, ok := w.TemplateIDs[name]
	if !ok {
		c.Fatalf("template %q not found", name)
	}
	verifier, err := store.Open(w.cfg)
	if err != nil {
		c.Fatalf("datastore unavailable: %s", err)
	}
	doc, err := verifier.GetDocument(id)
	if err != nil {
		c.Fatalf("template %q (id %s) not persisted: %s", name, id, err)
	}
	if got := doc.GetByKey("name").StringValue(); got != name {
		c.Fatalf("persisted document %s has name %q, expected %q", id, got, name)
	}
}
