//go:build !couchbase

package store

import (
	"github.com/policyhub/policy-contract-tests/config"
)

const available = false

func open(config.Config) (Verifier, error) {
	return nil, ErrUnavailable
}
