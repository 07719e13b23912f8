package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policyhub/policy-contract-tests/config"
)

func TestOpenWithoutDatastoreSupport(t *testing.T) {
	if Available() {
		t.Skip("harness built with couchbase support")
	}

	_, err := Open(config.Config{})
	require.ErrorIs(t, err, ErrUnavailable)

	_, again := Open(config.Config{})
	assert.Equal(t, err, again, "construction is attempted once per process")
}
