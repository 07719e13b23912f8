// Package store is the optional datastore collaborator used for out-of-band
// verification of persisted documents. The Couchbase SDK is only compiled in
// when the harness is built with the "couchbase" tag; without it, Open
// reports ErrUnavailable and every dependent scenario skips. Once the SDK is
// compiled in, a connection failure is a hard error, not a skip.
package store

import (
	"errors"
	"sync"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/policyhub/policy-contract-tests/config"
)

// ErrUnavailable means the harness was built without datastore support.
var ErrUnavailable = errors.New("couchbase support is not compiled into this harness (build with -tags couchbase)")

// Verifier gives read-only access to documents the service has persisted.
// It has no mutation contract.
type Verifier interface {
	GetDocument(id string) (ldvalue.Value, error)
}

// Available reports whether the datastore client library is compiled in. It
// says nothing about whether the datastore is reachable.
func Available() bool {
	return available
}

var (
	openOnce sync.Once
	opened   Verifier
	openErr  error
)

// Open constructs the process-wide Verifier. Construction is attempted once;
// every later call returns the same handle or the same error.
func Open(cfg config.Config) (Verifier, error) {
	openOnce.Do(func() {
		opened, openErr = open(cfg)
	})
	return opened, openErr
}
