package rivet

import (
	"context"

	"github.com/rivet-di/rivet/internal/container"
	"github.com/rivet-di/rivet/internal/reflect"
)

// Runner is the execution entry point of a runnable. Runnables are one-shot
// triggers: RunAll constructs each one through the table and calls Run once,
// in registration order.
type Runner = container.Runner

// RegisterRunnable appends a constructed runnable to the runnable sequence.
// The constructor's parameters are resolved through the registration table
// when RunAll executes; the constructed value is not cached and does not
// participate in shutdown.
func RegisterRunnable[T Runner](c *Container, ctor any) error {
	key := reflect.TypeKey[T]()

	recipe, err := buildRecipe[T](ctor)
	if err != nil {
		return wrapRegisterError(key, err)
	}

	err = c.internal.AppendRunnable(key, container.NewScoped(recipe))
	return wrapRegisterError(key, err)
}

// RegisterRunnableInstance appends an existing value to the runnable
// sequence.
func RegisterRunnableInstance(c *Container, r Runner) error {
	key := reflect.TypeKeyFromValue(r)

	err := c.internal.AppendRunnable(key, container.NewInstance(r))
	return wrapRegisterError(key, err)
}

// RunAll locks the container, then resolves and executes every runnable in
// registration order, synchronously on the calling goroutine. The first
// error aborts the remaining runnables and is returned; there is no
// isolation between entries. RunAll may be called again; already-executed
// runnables run again.
func (c *Container) RunAll(ctx context.Context) error {
	return wrapRunError(c.internal.RunAll(ctx))
}
