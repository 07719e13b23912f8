package policytests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/policyhub/policy-contract-tests/config"
	"github.com/policyhub/policy-contract-tests/framework"
)

const defaultTemplateSource = `rule("default").when(f => true).then(f => ({result: "ok"}))`

// World is the shared scenario context: the mutable state threaded through
// every step of one scenario. A fresh World is created per scenario and
// discarded with it; the HTTP client is the only piece shared across
// scenarios, and scenarios only read from it.
//
// LastResponse is nil until a request-issuing step runs; every subsequent
// request fully replaces it, along with the eagerly-read body and its parsed
// form. The name-to-ID maps are insert-only within a scenario.
type World struct {
	BaseURL      string
	LastResponse *http.Response
	LastBody     []byte
	LastJSON     ldvalue.Value
	TemplateIDs  map[string]string
	PolicyIDs    map[string]string

	cfg    config.Config
	client *http.Client
}

func newWorld(cfg config.Config, client *http.Client) *World {
	return &World{
		BaseURL:     cfg.APIBaseURL,
		TemplateIDs: make(map[string]string),
		PolicyIDs:   make(map[string]string),
		cfg:         cfg,
		client:      client,
	}
}

// world retrieves the scenario state from the framework context. The runner
// built by RunSuite always attaches a *World; anything else is a mistake in
// the initialization logic.
func world(c *framework.Context) *World {
	if w, ok := c.State().(*World); ok {
		return w
	}
	panic("scenario state was not a *World! The runner must be built by policytests.RunSuite.")
}

// get issues a GET against the service and records the response. Transport
// errors fail the scenario; there is no timeout on step requests.
func (w *World) get(c *framework.Context, path string) {
	c.Debug("GET %s", path)
	resp, err := w.client.Get(w.BaseURL + path)
	if err != nil {
		c.Fatalf("GET %s failed: %s", path, err)
	}
	w.record(c, resp)
}

// postJSON issues a POST with a JSON body and records the response.
func (w *World) postJSON(c *framework.Context, path string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.Fatalf("marshaling request body for POST %s: %s", path, err)
	}
	c.Debug("POST %s: %s", path, data)
	req, err := http.NewRequest("POST", w.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		c.Fatalf("building POST %s: %s", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		c.Fatalf("POST %s failed: %s", path, err)
	}
	w.record(c, resp)
}

// record reads the body eagerly and closes it, so that one step's HTTP I/O
// is fully complete before the next step begins.
func (w *World) record(c *framework.Context, resp *http.Response) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Fatalf("reading response body: %s", err)
	}
	w.LastResponse = resp
	w.LastBody = body
	w.LastJSON = ldvalue.Parse(body)
	c.Debug("response status %d: %s", resp.StatusCode, body)
}

func (w *World) requireResponse(c *framework.Context) {
	if w.LastResponse == nil {
		c.Fatalf("no request has been made yet in this scenario")
	}
}

// responseObject returns the parsed response body, failing the scenario if
// it is not a JSON object.
func (w *World) responseObject(c *framework.Context) ldvalue.Value {
	w.requireResponse(c)
	if w.LastJSON.Type() != ldvalue.ObjectType {
		c.Fatalf("response is not a JSON object: %s", w.LastBody)
	}
	return w.LastJSON
}
