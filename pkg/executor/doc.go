// Package executor runs a plan one step at a time.
//
// Every step is reported before it runs. In dry-run mode nothing is run.
// Otherwise each command is started as a child process that inherits the
// standard streams, and the first spawn failure or non-zero exit stops the
// run: no later step is reported or started.
package executor
