package policytests

import (
	"net/http"
	"strings"

	"github.com/policyhub/policy-contract-tests/framework"
)

func givenAPIAvailableAt(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	url := args.String(0)
	w.BaseURL = url
	resp, err := w.client.Get(url + healthPath)
	if err != nil {
		c.Fatalf("API check failed for %s: %s", url, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.Fatalf("API at %s responded with status %d", url, resp.StatusCode)
	}
}

func givenTemplateExists(c *framework.Context, args framework.StepArgs) {
	createTemplate(c, world(c), args.String(0), defaultTemplateSource)
}

func givenTemplateExistsWithSource(c *framework.Context, args framework.StepArgs) {
	createTemplate(c, world(c), args.String(0), args.DocString())
}

func createTemplate(c *framework.Context, w *World, name, source string) {
	payload := map[string]string{
		"name":   name,
		"source": strings.TrimSpace(source),
	}
	w.postJSON(c, "/api/rule-templates", payload)
	if w.LastResponse.StatusCode != http.StatusCreated {
		c.Fatalf("failed to create template %q: expected status 201, got %d: %s",
			name, w.LastResponse.StatusCode, w.LastBody)
	}
	id := w.LastJSON.GetByKey("id").StringValue()
	if id == "" {
		c.Fatalf("template creation response carries no id: %s", w.LastBody)
	}
	w.TemplateIDs[name] = id
}

func givenPolicyExists(c *framework.Context, args framework.StepArgs) {
	w := world(c)
	name, templateName := args.String(0), args.String(1)
	templateID, ok := w.TemplateIDs[templateName]
	if !ok {
		c.Fatalf("template %q not found", templateName)
	}

	payload := map[string]interface{}{
		"name":             name,
		"rule_template_id": templateID,
		"metadata":         map[string]interface{}{},
	}
	w.postJSON(c, "/api/policies", payload)
	if w.LastResponse.StatusCode != http.StatusCreated {
		c.Fatalf("failed to create policy %q: expected status 201, got %d: %s",
			name, w.LastResponse.StatusCode, w.LastBody)
	}
	id := w.LastJSON.GetByKey("id").StringValue()
	if id == "" {
		c.Fatalf("policy creation response carries no id: %s", w.LastBody)
	}
	w.PolicyIDs[name] = id
}
