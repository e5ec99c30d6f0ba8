// Package logging wires zerolog for the whole process. Human readable
// records go to stderr, an optional JSON log file receives a copy, and
// components obtain named child loggers through GetLogger.
package logging
