package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{"API_BASE_URL", "CB_HOST", "CB_USER", "CB_PASSWORD", "CB_BUCKET"} {
		t.Setenv(name, "")
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	c := resolve()
	assert.Equal(t, defaultAPIBaseURL, c.APIBaseURL)
	assert.Equal(t, defaultCouchbaseHost, c.CouchbaseHost)
	assert.Equal(t, defaultCouchbaseUser, c.CouchbaseUser)
	assert.Equal(t, defaultCouchbasePassword, c.CouchbasePassword)
	assert.Equal(t, defaultCouchbaseBucket, c.CouchbaseBucket)
}

func TestResolveReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://policy-hub.test:9999")
	t.Setenv("CB_BUCKET", "contract-tests")

	c := resolve()
	assert.Equal(t, "http://policy-hub.test:9999", c.APIBaseURL)
	assert.Equal(t, "contract-tests", c.CouchbaseBucket)
	assert.Equal(t, defaultCouchbaseHost, c.CouchbaseHost, "unset settings keep their defaults")
}

func TestEmptyValueCountsAsUnset(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "")
	c := resolve()
	assert.Equal(t, defaultAPIBaseURL, c.APIBaseURL)
}

func TestLoadCachesFirstResolution(t *testing.T) {
	first := Load()
	t.Setenv("API_BASE_URL", "http://changed-after-first-load:1")
	assert.Equal(t, first, Load(), "resolution happens once per process")
}
