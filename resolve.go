package rivet

import (
	"context"

	"github.com/rivet-di/rivet/internal/reflect"
)

// Get resolves the binding registered under T's type key. The first Get on a
// container locks it; registration fails afterwards.
func Get[T any](c *Container) (T, error) {
	return GetCtx[T](context.Background(), c)
}

// GetCtx resolves with an explicit context. The context is passed through to
// constructors but carries no cancellation semantics inside the engine:
// every resolution runs to synchronous completion or fails synchronously.
func GetCtx[T any](ctx context.Context, c *Container) (T, error) {
	var zero T
	key := reflect.TypeKey[T]()

	value, err := c.internal.Resolve(ctx, key)
	if err != nil {
		return zero, wrapResolveError(key, err)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, newError(ErrCodeResolutionFailed, "bound value has unexpected type", nil).WithKey(key)
	}

	return typed, nil
}

// GetNamed resolves a named binding of T.
func GetNamed[T any](c *Container, name string) (T, error) {
	return GetNamedCtx[T](context.Background(), c, name)
}

func GetNamedCtx[T any](ctx context.Context, c *Container, name string) (T, error) {
	var zero T
	key := reflect.TypeKeyNamed[T](name)

	value, err := c.internal.Resolve(ctx, key)
	if err != nil {
		return zero, wrapResolveError(key, err)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, newError(ErrCodeResolutionFailed, "bound value has unexpected type", nil).WithKey(key)
	}

	return typed, nil
}

// MustGet resolves T and panics on failure.
func MustGet[T any](c *Container) T {
	v, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetNamed resolves a named binding of T and panics on failure.
func MustGetNamed[T any](c *Container, name string) T {
	v, err := GetNamed[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet resolves T, reporting success instead of an error.
func TryGet[T any](c *Container) (T, bool) {
	v, err := Get[T](c)
	return v, err == nil
}

// Has reports whether a binding exists for T. Has does not lock the
// container.
func Has[T any](c *Container) bool {
	return c.internal.Has(reflect.TypeKey[T]())
}

// HasNamed reports whether a named binding exists for T.
func HasNamed[T any](c *Container, name string) bool {
	return c.internal.Has(reflect.TypeKeyNamed[T](name))
}
