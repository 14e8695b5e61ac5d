// Package mocks provides centralized mock implementations of the
// application's interfaces for testing.
//
// Each mock exposes function fields so individual tests can override
// behavior per-method, plus simple default implementations backed by in-memory
// state. Defining mocks here once keeps test files across packages from
// re-implementing the same stubs.
package mocks
