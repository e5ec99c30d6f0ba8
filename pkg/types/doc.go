// Package types defines the small value types shared by the parser, the
// planner and the handlers: the Domain tag, the Action record and the FS
// interface state files are read through.
package types
