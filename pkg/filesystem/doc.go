// Package filesystem provides read-only filesystem implementations for
// loading state documents: the OS filesystem for real runs and afero for
// tests.
package filesystem
