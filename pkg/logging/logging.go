package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls where log records go.
type Options struct {
	// Verbosity maps -v counts to levels: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// Console receives human readable records. Defaults to os.Stderr.
	Console io.Writer

	// LogFile is an optional JSON log file; empty disables file logging.
	LogFile string
}

// console and runID survive SetupLogger so a log file can join later
var (
	console    io.Writer = os.Stderr
	runID      string
	withCaller bool
)

// SetupLogger configures the global logger based on verbosity level.
// Console records go to stderr so stdout stays reserved for the command
// stream. Every record carries a per-process run id.
func SetupLogger(opts Options) string {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console = opts.Console
	if console == nil {
		console = os.Stderr
	}
	runID = uuid.NewString()
	// Add caller information for debug and trace levels
	withCaller = opts.Verbosity >= 2

	log.Logger = newLogger(consoleWriter())

	if opts.LogFile != "" {
		if err := AttachLogFile(opts.LogFile); err != nil {
			log.Warn().Err(err).Str("path", opts.LogFile).Msg("Failed to create log file, logging to console only")
		}
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.LogFile).Msg("Logger initialized")
	return runID
}

// AttachLogFile adds a JSON log file next to the console writer set up by
// SetupLogger, keeping the run id.
func AttachLogFile(path string) error {
	file, err := setupLogFile(path)
	if err != nil {
		return err
	}
	log.Logger = newLogger(io.MultiWriter(consoleWriter(), file))
	return nil
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp().Str("run", runID)
	if withCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// LevelFor converts a -v count into a zerolog level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(logger zerolog.Logger, program string, args []string) {
	logger.Debug().
		Str("command", program).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
