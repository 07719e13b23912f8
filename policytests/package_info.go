// Package policytests contains the policy-hub contract-test suite: the
// per-scenario world state, the step vocabulary bound to handler functions,
// and the pre-scenario availability gate. The framework package supplies the
// scenario engine; everything here knows about the service under test.
package policytests
