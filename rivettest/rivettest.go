// Package rivettest provides helpers for testing code wired through a rivet
// container.
package rivettest

import (
	"context"

	"github.com/rivet-di/rivet"
	"github.com/rivet-di/rivet/internal/reflect"
)

type TB interface {
	Helper()
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

// TestContainer wraps a container and shuts it down at test cleanup.
type TestContainer struct {
	*rivet.Container
	tb TB
}

func New(tb TB, opts ...rivet.Option) *TestContainer {
	tb.Helper()

	c := rivet.New(opts...)
	tc := &TestContainer{
		Container: c,
		tb:        tb,
	}

	tb.Cleanup(func() {
		if err := c.Shutdown(context.Background()); err != nil {
			tb.Fatalf("failed to shut down container: %v", err)
		}
	})

	return tc
}

// Replace overwrites the binding for T with a fixed value. Must be called
// before the container locks.
func Replace[T any](tc *TestContainer, value T) {
	tc.tb.Helper()

	if err := rivet.RegisterInstance(tc.Container, value, rivet.WithOverwrite()); err != nil {
		tc.tb.Fatalf("failed to replace %s: %v", reflect.TypeKey[T](), err)
	}
}

// ReplaceNamed overwrites the named binding for T with a fixed value.
func ReplaceNamed[T any](tc *TestContainer, name string, value T) {
	tc.tb.Helper()

	if err := rivet.RegisterInstance(tc.Container, value, rivet.WithName(name), rivet.WithOverwrite()); err != nil {
		tc.tb.Fatalf("failed to replace %s: %v", reflect.TypeKeyNamed[T](name), err)
	}
}

func (tc *TestContainer) RequireRunAll(ctx context.Context) {
	tc.tb.Helper()

	if err := tc.RunAll(ctx); err != nil {
		tc.tb.Fatalf("failed to run container: %v", err)
	}
}

func (tc *TestContainer) RequireShutdown(ctx context.Context) {
	tc.tb.Helper()

	if err := tc.Shutdown(ctx); err != nil {
		tc.tb.Fatalf("failed to shut down container: %v", err)
	}
}

func AssertHas[T any](tc *TestContainer) {
	tc.tb.Helper()

	if !rivet.Has[T](tc.Container) {
		tc.tb.Fatalf("expected container to have %s", reflect.TypeKey[T]())
	}
}

func AssertNotHas[T any](tc *TestContainer) {
	tc.tb.Helper()

	if rivet.Has[T](tc.Container) {
		tc.tb.Fatalf("expected container to not have %s", reflect.TypeKey[T]())
	}
}

func MustGet[T any](tc *TestContainer) T {
	tc.tb.Helper()

	v, err := rivet.Get[T](tc.Container)
	if err != nil {
		tc.tb.Fatalf("failed to get %s: %v", reflect.TypeKey[T](), err)
	}
	return v
}

func MustGetNamed[T any](tc *TestContainer, name string) T {
	tc.tb.Helper()

	v, err := rivet.GetNamed[T](tc.Container, name)
	if err != nil {
		tc.tb.Fatalf("failed to get %s: %v", reflect.TypeKeyNamed[T](name), err)
	}
	return v
}

func MustRegisterInstance[T any](tc *TestContainer, value T, opts ...rivet.BindingOption) {
	tc.tb.Helper()

	if err := rivet.RegisterInstance(tc.Container, value, opts...); err != nil {
		tc.tb.Fatalf("failed to register instance %s: %v", reflect.TypeKey[T](), err)
	}
}

func MustRegisterSingleton[T any](tc *TestContainer, ctor any, opts ...rivet.BindingOption) {
	tc.tb.Helper()

	if err := rivet.RegisterSingleton[T](tc.Container, ctor, opts...); err != nil {
		tc.tb.Fatalf("failed to register singleton %s: %v", reflect.TypeKey[T](), err)
	}
}

func MustRegisterScoped[T any](tc *TestContainer, ctor any, opts ...rivet.BindingOption) {
	tc.tb.Helper()

	if err := rivet.RegisterScoped[T](tc.Container, ctor, opts...); err != nil {
		tc.tb.Fatalf("failed to register scoped %s: %v", reflect.TypeKey[T](), err)
	}
}
