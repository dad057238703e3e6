package rivet

import (
	"context"
	"log/slog"

	"github.com/rivet-di/rivet/internal/container"
)

// Container holds a registration table and a runnable sequence. Bindings are
// added while the container is unlocked; the first Get, RunAll or Shutdown
// call locks it permanently and no further registration succeeds.
//
// Get is safe for concurrent use. Registration, RunAll and Shutdown are
// expected to be driven by a single coordinating goroutine.
type Container struct {
	internal *container.Container
	config   *containerConfig
}

type containerConfig struct {
	logger     *slog.Logger
	onResolve  []ResolveHook
	onRun      []RunHook
	onShutdown []ShutdownHook
}

// New creates an empty, unlocked container.
func New(opts ...Option) *Container {
	cfg := &containerConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	internal := container.New(
		&container.Config{
			Logger:     cfg.logger,
			OnResolve:  cfg.onResolve,
			OnRun:      cfg.onRun,
			OnShutdown: cfg.onShutdown,
		},
	)

	return &Container{
		internal: internal,
		config:   cfg,
	}
}

// GetKey resolves the binding for an explicit component key. Locks the
// container.
func (c *Container) GetKey(ctx context.Context, key string) (any, error) {
	value, err := c.internal.Resolve(ctx, key)
	if err != nil {
		return nil, wrapResolveError(key, err)
	}
	return value, nil
}

// Shutdown locks the container, then walks the registration table in
// insertion order and closes every held value that implements io.Closer:
// registered instances and singletons that were actually constructed.
// Scoped bindings never contribute a release call.
//
// Release errors do not abort the traversal; they are collected and returned
// joined. Shutdown is idempotent.
func (c *Container) Shutdown(ctx context.Context) error {
	if err := c.internal.Shutdown(ctx); err != nil {
		return newError(ErrCodeShutdownFailed, "shutdown completed with errors", err)
	}
	return nil
}

// Keys returns the registered component keys in insertion order.
func (c *Container) Keys() []string {
	return c.internal.Keys()
}

// Size returns the number of bindings in the registration table.
func (c *Container) Size() int {
	return c.internal.Size()
}

// Locked reports whether the lock flag has been set.
func (c *Container) Locked() bool {
	return c.internal.Locked()
}
