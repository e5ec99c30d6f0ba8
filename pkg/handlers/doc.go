// Package handlers defines the per-domain contract used by the state parser
// and the planner. Each handler owns one line grammar (how a declaration is
// recognized and split into identity and payload) and one command policy
// (how a missing, new or changed identity is turned into a Command).
//
// Handlers are evaluated as an explicit ordered list: the first handler whose
// marker matches a line consumes it.
package handlers
