// Package internal contains the process-wide state and logging
// infrastructure for the indietro back-navigation library. Types and
// functions in this package are not part of the public API.
package internal

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/indietro/pkg/indietro/backstack"
)

var (
	stateMu     sync.Mutex
	initialized atomic.Bool
	registry    *backstack.Registry
)

// Install stores the active registry if none is installed yet.
// Returns false, leaving the existing registry untouched, when the
// library is already initialized.
func Install(r *backstack.Registry) bool {
	stateMu.Lock()
	defer stateMu.Unlock()

	if initialized.Load() {
		return false
	}

	registry = r
	initialized.Store(true)
	return true
}

// Teardown unconditionally drops the active registry and resets the
// initialization flag so a later Install succeeds. Idempotent.
func Teardown() {
	stateMu.Lock()
	defer stateMu.Unlock()

	registry = nil
	initialized.Store(false)
}

// Initialized reports whether a registry is currently installed.
func Initialized() bool {
	return initialized.Load()
}

// Registry returns the installed registry, or nil before Install /
// after Teardown.
func Registry() *backstack.Registry {
	stateMu.Lock()
	defer stateMu.Unlock()
	return registry
}
