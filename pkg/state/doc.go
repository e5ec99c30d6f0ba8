// Package state parses a build-script-like document into a State: the
// ordered log of every recognized action plus one lookup table per domain.
//
// The log is the source of truth for ordering. Tables are derived from the
// same scan, are never mutated after Parse returns, and only serve identity
// lookups during planning.
package state
