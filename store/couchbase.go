//go:build couchbase

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/policyhub/policy-contract-tests/config"
)

const available = true

const clusterReadyTimeout = time.Second * 5

type couchbaseVerifier struct {
	collection *gocb.Collection
}

func open(cfg config.Config) (Verifier, error) {
	cluster, err := gocb.Connect(cfg.CouchbaseHost, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: cfg.CouchbaseUser,
			Password: cfg.CouchbasePassword,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("couchbase connect to %s: %w", cfg.CouchbaseHost, err)
	}
	if err := cluster.WaitUntilReady(clusterReadyTimeout, nil); err != nil {
		return nil, fmt.Errorf("couchbase cluster at %s not ready: %w", cfg.CouchbaseHost, err)
	}
	bucket := cluster.Bucket(cfg.CouchbaseBucket)
	return &couchbaseVerifier{collection: bucket.DefaultCollection()}, nil
}

func (v *couchbaseVerifier) GetDocument(id string) (ldvalue.Value, error) {
	res, err := v.collection.Get(id, nil)
	if err != nil {
		return ldvalue.Null(), fmt.Errorf("couchbase get %q: %w", id, err)
	}
	var raw json.RawMessage
	if err := res.Content(&raw); err != nil {
		return ldvalue.Null(), fmt.Errorf("couchbase document %q content: %w", id, err)
	}
	return ldvalue.Parse(raw), nil
}
