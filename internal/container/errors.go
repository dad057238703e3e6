package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLocked is returned when a registration is attempted after the
	// container has begun resolving.
	ErrLocked = errors.New("container is locked")

	// ErrAlreadyRegistered is returned when a key is already bound and
	// overwrite was not requested.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotFound is returned when a key is absent from the table at
	// resolution time.
	ErrNotFound = errors.New("dependency not found")

	// ErrNoUsableConstructor is returned when a binding has zero or
	// ambiguous eligible constructors.
	ErrNoUsableConstructor = errors.New("no usable constructor")
)

// CycleError reports a circular binding chain encountered during resolution.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Chain, " -> "))
}
