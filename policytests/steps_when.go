package policytests

import (
	"encoding/json"
	"net/http"

	"github.com/policyhub/policy-contract-tests/framework"
)

func whenPostWith(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	endpoint := args.String(0)
	var payload interface{}
	if err := json.Unmarshal([]byte(args.DocString()), &payload); err != nil {
		c.Fatalf("request body for POST %s is not valid JSON: %s", endpoint, err)
	}
	w.postJSON(c, endpoint, payload)
	w.recordCreatedID()
}

// recordCreatedID inspects a successful response for a server-assigned id
// and files it under the response's name. Whether the resource is a policy
// or a template is inferred from the presence of a template-reference field.
// TODO: the API could carry an explicit resource-kind tag in creation
// responses, which would let this structural guess go away.
func (w *World) recordCreatedID() {
	status := w.LastResponse.StatusCode
	if status != http.StatusOK && status != http.StatusCreated {
		return
	}
	id := w.LastJSON.GetByKey("id").StringValue()
	name := w.LastJSON.GetByKey("name").StringValue()
	if id == "" || name == "" {
		return
	}
	if _, isPolicy := w.LastJSON.TryGetByKey("rule_template_id"); isPolicy {
		w.PolicyIDs[name] = id
	} else {
		w.TemplateIDs[name] = id
	}
}

func whenGet(c *framework.Context, args framework.StepArgs) {
	world(c).get(c, args.String(0))
}

func whenFetchTemplate(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	name := args.String(0)
	id, ok := w.TemplateIDs[name]
	if !ok {
		c.Fatalf("template %q not found", name)
	}
	w.get(c, "/api/rule-templates/"+id)
}

func whenExecutePolicy(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	name := args.String(0)
	policyID, ok := w.PolicyIDs[name]
	if !ok {
		c.Fatalf("policy %q not found", name)
	}

	var facts interface{}
	if err := json.Unmarshal([]byte(args.DocString()), &facts); err != nil {
		c.Fatalf("facts for policy %q are not valid JSON: %s", name, err)
	}
	payload := map[string]interface{}{
		"policy_id": policyID,
		"facts":     facts,
	}
	w.postJSON(c, "/api/execute", payload)
}
