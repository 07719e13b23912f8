// Package config resolves the harness's runtime settings from environment
// variables. Resolution happens once per process, at first access, and the
// resolved value is passed explicitly to the components that need it.
package config

import (
	"sync"

	"github.com/caarlos0/env/v11"
)

const (
	defaultAPIBaseURL        = "http://localhost:8080"
	defaultCouchbaseHost     = "couchbase://localhost"
	defaultCouchbaseUser     = "Administrator"
	defaultCouchbasePassword = "password"
	defaultCouchbaseBucket   = "policy-hub"
)

// Config holds the resolved settings. Immutable after resolution. Values are
// not validated here; a malformed URL or credential surfaces when the first
// network call using it fails.
type Config struct {
	APIBaseURL        string `env:"API_BASE_URL"`
	CouchbaseHost     string `env:"CB_HOST"`
	CouchbaseUser     string `env:"CB_USER"`
	CouchbasePassword string `env:"CB_PASSWORD"`
	CouchbaseBucket   string `env:"CB_BUCKET"`
}

var (
	loadOnce sync.Once
	loaded   Config
)

// Load resolves the configuration from the process environment. The first
// call resolves and caches; subsequent calls return the cached value.
func Load() Config {
	loadOnce.Do(func() {
		loaded = resolve()
	})
	return loaded
}

func resolve() Config {
	var c Config
	// all fields are plain strings; env.Parse cannot fail on this struct
	_ = env.Parse(&c)
	c.applyDefaults()
	return c
}

// applyDefaults fills every setting that is unset or set to the empty
// string. An empty value never reaches a network call.
func (c *Config) applyDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	if c.CouchbaseHost == "" {
		c.CouchbaseHost = defaultCouchbaseHost
	}
	if c.CouchbaseUser == "" {
		c.CouchbaseUser = defaultCouchbaseUser
	}
	if c.CouchbasePassword == "" {
		c.CouchbasePassword = defaultCouchbasePassword
	}
	if c.CouchbaseBucket == "" {
		c.CouchbaseBucket = defaultCouchbaseBucket
	}
}
