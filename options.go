package huff

import (
	"io"
	"log/slog"
)

// DebugLevel selects how much diagnostic output a single Compress or
// Decompress call produces.
type DebugLevel int

// Debug level constants.
const (
	DebugOff  DebugLevel = 0 // Nothing is logged.
	DebugLow  DebugLevel = 1 // One line per phase.
	DebugHigh DebugLevel = 4 // Also every entry of the code table.
)

// Options configures Compress and Decompress.  A nil *Options is equivalent
// to DefaultOptions().
type Options struct {
	// Debug sets the verbosity of diagnostics sent to Logger.
	Debug DebugLevel

	// Logger receives diagnostics.  If nil, they are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options with diagnostics switched off.
func DefaultOptions() *Options {
	return &Options{Debug: DebugOff}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (opts *Options) logger() *slog.Logger {
	if opts == nil || opts.Logger == nil {
		return discardLogger
	}
	return opts.Logger
}

func (opts *Options) debug(level DebugLevel) bool {
	return opts != nil && opts.Debug >= level
}

// trace writes one diagnostic record if the configured level is at least
// level.  The record is logged at slog.LevelInfo so that it is not filtered a
// second time by the handler.
func (opts *Options) trace(level DebugLevel, msg string, args ...any) {
	if !opts.debug(level) {
		return
	}
	opts.logger().Info(msg, args...)
}
