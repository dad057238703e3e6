package rivet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivet-di/rivet/internal/container"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeAlreadyRegistered
	ErrCodeLocked
	ErrCodeDependencyNotFound
	ErrCodeNoUsableConstructor
	ErrCodeCircularDependency
	ErrCodeResolutionFailed
	ErrCodeRunFailed
	ErrCodeShutdownFailed
	ErrCodeModuleApplyFailed
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:             "UNKNOWN",
	ErrCodeAlreadyRegistered:   "ALREADY_REGISTERED",
	ErrCodeLocked:              "LOCKED",
	ErrCodeDependencyNotFound:  "DEPENDENCY_NOT_FOUND",
	ErrCodeNoUsableConstructor: "NO_USABLE_CONSTRUCTOR",
	ErrCodeCircularDependency:  "CIRCULAR_DEPENDENCY",
	ErrCodeResolutionFailed:    "RESOLUTION_FAILED",
	ErrCodeRunFailed:           "RUN_FAILED",
	ErrCodeShutdownFailed:      "SHUTDOWN_FAILED",
	ErrCodeModuleApplyFailed:   "MODULE_APPLY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Error is the error type surfaced by every container operation. Code
// identifies the kind; Key names the binding involved, when known.
type Error struct {
	Code    ErrorCode
	Message string
	Key     string
	Cause   error
	Chain   []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Key != "" {
		b.WriteString(fmt.Sprintf(" key=%q:", e.Key))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

func (e *Error) WithChain(chain []string) *Error {
	e.Chain = chain
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// wrapRegisterError translates engine registration failures into coded
// errors.
func wrapRegisterError(key string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, container.ErrLocked):
		return newError(ErrCodeLocked, "registration after lock", err).WithKey(key)
	case errors.Is(err, container.ErrAlreadyRegistered):
		return newError(ErrCodeAlreadyRegistered, "key already bound", err).WithKey(key)
	case errors.Is(err, container.ErrNoUsableConstructor):
		return newError(ErrCodeNoUsableConstructor, "no usable constructor", err).WithKey(key)
	default:
		return newError(ErrCodeUnknown, "registration failed", err).WithKey(key)
	}
}

// wrapResolveError translates engine resolution failures into coded errors.
// The most specific kind found in the chain wins.
func wrapResolveError(key string, err error) error {
	if err == nil {
		return nil
	}

	var cyc *container.CycleError
	switch {
	case errors.As(err, &cyc):
		return newError(ErrCodeCircularDependency, "circular dependency", err).
			WithKey(key).
			WithChain(cyc.Chain)
	case errors.Is(err, container.ErrNotFound):
		return newError(ErrCodeDependencyNotFound, "dependency not found", err).WithKey(key)
	case errors.Is(err, container.ErrNoUsableConstructor):
		return newError(ErrCodeNoUsableConstructor, "no usable constructor", err).WithKey(key)
	default:
		return newError(ErrCodeResolutionFailed, "resolution failed", err).WithKey(key)
	}
}

// wrapRunError translates RunAll failures. Resolution kinds surface as
// themselves; an error raised by the runnable itself becomes RunFailed.
func wrapRunError(err error) error {
	if err == nil {
		return nil
	}

	var cyc *container.CycleError
	if errors.As(err, &cyc) ||
		errors.Is(err, container.ErrNotFound) ||
		errors.Is(err, container.ErrNoUsableConstructor) {
		return wrapResolveError("", err)
	}

	return newError(ErrCodeRunFailed, "runnable execution failed", err)
}

func IsAlreadyRegistered(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAlreadyRegistered
}

func IsLocked(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeLocked
}

func IsDependencyNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDependencyNotFound
}

func IsNoUsableConstructor(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNoUsableConstructor
}

func IsCircularDependency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCircularDependency
}

func IsResolutionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeResolutionFailed
}

func IsRunFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRunFailed
}

func IsShutdownFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeShutdownFailed
}
