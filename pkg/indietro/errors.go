package indietro

import (
	"errors"
	"fmt"
)

// ErrNotInitialized indicates the back-handler stack was used before Init
// (or after Close). This is a programming error: the global operations
// panic with this value rather than silently doing nothing.
var ErrNotInitialized = errors.New("back-handler stack not initialized")

// InfrastructureError represents a library-level failure (a back-button
// device that cannot be opened, an unreadable binding config, etc.) as
// opposed to a handler-level failure, which the stack deliberately
// swallows.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_device", "load_config")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("indietro: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("indietro: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsNotInitialized checks if an error indicates use before Init.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
