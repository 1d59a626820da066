// Package harness runs the alttext binary for integration tests.
//
// The binary is compiled once per test run. Each test gets its own
// ALTTEXT_HOME, and every other ALTTEXT_* variable from the caller's
// environment is dropped.
package harness
