// Package fakesem is a minimal, in-memory implementation of
// pkg/hdlval's Value and Semantics capability interfaces, good enough
// to drive every span merge rule and the spec's end-to-end scenarios
// without a real VHDL or SystemC front end, which is explicitly out of
// scope for the core.
//
// It is test-only: nothing outside _test.go files imports it.
package fakesem
