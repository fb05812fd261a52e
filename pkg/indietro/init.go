// Package indietro arbitrates back-navigation signals (hardware back
// button, gesture, B button) against a stack of transient UI layers that
// may want to intercept the signal instead of letting it reach default
// navigation.
//
// Exactly one back-handler stack exists per running application. Init
// installs it, wires the platform signal source, and Close tears it down.
// Dialogs and overlays register interest through Binding or by pushing
// backstack entries directly.
package indietro

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/indietro/pkg/indietro/backstack"
	"github.com/BrandonKowalski/indietro/pkg/indietro/constants"
	"github.com/BrandonKowalski/indietro/pkg/indietro/internal"
)

// Options configures the back-handler stack initialization.
type Options struct {
	Fallback func()                 // Invoked when a back signal arrives and no layer claims it. Required.
	Bind     func(trigger func())   // Installs the platform signal source; invoked exactly once with the dispatch trigger.
	OnPush   func(*backstack.Entry) // Observer invoked after each push
	OnRemove func(*backstack.Entry) // Observer invoked after each removal, including dispatch-triggered ones
	LogPath  string                 // Full path for the log file including filename (creates parent directories)
}

// Init installs the process-wide back-handler stack and invokes
// options.Bind once with the dispatch trigger.
//
// Calling Init while already initialized logs a warning and keeps the
// active configuration, so redundant setup from independent mount points
// is harmless. In that case options.Bind is not invoked.
//
// Panics if options.Fallback is nil.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if internal.Initialized() {
		internal.GetInternalLogger().Warn("Init called while already initialized, keeping active configuration")
		return
	}

	if options.Fallback == nil {
		panic("indietro: Options.Fallback is required")
	}

	reg := backstack.New(backstack.Config{
		Fallback: options.Fallback,
		OnPush:   options.OnPush,
		OnRemove: options.OnRemove,
		Logger:   internal.GetInternalLogger(),
	})

	if !internal.Install(reg) {
		internal.GetInternalLogger().Warn("Init called while already initialized, keeping active configuration")
		return
	}

	if options.Bind != nil {
		options.Bind(trigger)
	}
}

// Close tears down the back-handler stack: the stack is emptied, the
// configuration dropped, and the initialization flag cleared so a later
// Init starts fresh. Idempotent.
//
// A platform binding installed at Init time keeps its subscription for
// the process lifetime; signals it delivers after Close are logged and
// dropped.
func Close() {
	internal.Teardown()
}

// trigger is handed to Options.Bind. Unlike Dispatch it tolerates a
// closed stack, because a platform subscription outlives Close and may
// still deliver a signal during application shutdown.
func trigger() {
	r := internal.Registry()
	if r == nil {
		internal.GetInternalLogger().Warn("back signal after Close, dropping")
		return
	}
	r.Dispatch()
}

// registry returns the active registry or panics with ErrNotInitialized.
func registry() *backstack.Registry {
	r := internal.Registry()
	if r == nil {
		panic(ErrNotInitialized)
	}
	return r
}

// Push appends entry to the top of the process-wide stack.
// Panics with ErrNotInitialized before Init.
func Push(entry *backstack.Entry) {
	registry().Push(entry)
}

// Remove removes the first occurrence of entry from the process-wide
// stack; a no-op if the entry is not present.
// Panics with ErrNotInitialized before Init.
func Remove(entry *backstack.Entry) {
	registry().Remove(entry)
}

// Dispatch processes one back signal against the process-wide stack.
// Use this to feed signals from a source that was not wired via
// Options.Bind. Panics with ErrNotInitialized before Init.
func Dispatch() {
	registry().Dispatch()
}

// Len returns the current depth of the process-wide stack.
// Panics with ErrNotInitialized before Init.
func Len() int {
	return registry().Len()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}
