package policytests

import (
	"fmt"
	"net/http"
	"time"

	"github.com/policyhub/policy-contract-tests/framework"
)

const healthPath = "/health"
const healthProbeTimeout = time.Second * 5

// the gate gets a bounded timeout of its own; step requests do not
var probeClient = &http.Client{Timeout: healthProbeTimeout}

// checkAvailability is the availability gate. It runs before every scenario
// and converts "environment not provisioned" into a skip, never a failure:
// a connection error or a non-success health status means the service under
// test simply is not there, which must not show up as a broken test.
func checkAvailability(c *framework.Context, baseURL string) {
	resp, err := probeClient.Get(baseURL + healthPath)
	if err != nil {
		c.SkipWithReason(fmt.Sprintf("cannot connect to API at %s: %s", baseURL, err))
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.SkipWithReason(fmt.Sprintf("API not available at %s (health returned status %d)", baseURL, resp.StatusCode))
	}
}
