package container

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ResolveHook observes one resolution of a component key.
type ResolveHook func(key string, duration time.Duration, err error)

// RunHook observes one runnable execution.
type RunHook func(key string, duration time.Duration, err error)

// ShutdownHook observes one release-hook invocation during shutdown.
type ShutdownHook func(key string, duration time.Duration, err error)

// Container owns the registration table, the runnable sequence and the lock
// flag. Registration mutates the table only while the flag is unset; the
// first resolve, run or shutdown call flips it permanently.
type Container struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
	order   []string

	runnables []runnableEntry

	locked atomic.Bool
	closed bool

	logger     *slog.Logger
	onResolve  []ResolveHook
	onRun      []RunHook
	onShutdown []ShutdownHook
}

// Config carries the ambient collaborators of the engine.
type Config struct {
	Logger     *slog.Logger
	OnResolve  []ResolveHook
	OnRun      []RunHook
	OnShutdown []ShutdownHook
}

func New(cfg *Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Container{
		entries:    make(map[string]Descriptor),
		logger:     logger,
		onResolve:  cfg.OnResolve,
		onRun:      cfg.OnRun,
		onShutdown: cfg.OnShutdown,
	}
}

// Register inserts a descriptor under key. With overwrite the binding is
// replaced in place and keeps its original insertion position.
func (c *Container) Register(key string, d Descriptor, overwrite bool) error {
	if c.locked.Load() {
		return fmt.Errorf("%w: cannot register %s", ErrLocked, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
		}
		c.entries[key] = d
		c.logger.Debug("binding overwritten", "key", key, "lifetime", d.Lifetime())
		return nil
	}

	c.entries[key] = d
	c.order = append(c.order, key)
	c.logger.Debug("binding registered", "key", key, "lifetime", d.Lifetime())
	return nil
}

// Lookup returns the descriptor bound to key.
func (c *Container) Lookup(key string) (Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, exists := c.entries[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return d, nil
}

// Has reports whether key is bound.
func (c *Container) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.entries[key]
	return exists
}

// Keys returns the bound component keys in insertion order.
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Size returns the number of bindings in the table.
func (c *Container) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Locked reports whether the lock flag has been set.
func (c *Container) Locked() bool {
	return c.locked.Load()
}

// seal sets the lock flag. The transition is monotonic and idempotent.
func (c *Container) seal() {
	if c.locked.CompareAndSwap(false, true) {
		c.logger.Debug("container locked")
	}
}
