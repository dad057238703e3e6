package container

import (
	"context"
	"fmt"
	"time"
)

// Runner is the execution entry point of a runnable binding.
type Runner interface {
	Run(ctx context.Context) error
}

type runnableEntry struct {
	key  string
	desc Descriptor
}

// AppendRunnable adds a one-shot trigger to the runnable sequence. Runnables
// live outside the registration table and are never part of shutdown.
func (c *Container) AppendRunnable(key string, d Descriptor) error {
	if c.locked.Load() {
		return fmt.Errorf("%w: cannot append runnable %s", ErrLocked, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.runnables = append(c.runnables, runnableEntry{key: key, desc: d})
	c.logger.Debug("runnable registered", "key", key)
	return nil
}

// RunAll locks the container, then resolves and executes every runnable in
// insertion order on the calling goroutine. The first error aborts the
// remaining entries and propagates.
func (c *Container) RunAll(ctx context.Context) error {
	c.seal()

	c.mu.RLock()
	entries := make([]runnableEntry, len(c.runnables))
	copy(entries, c.runnables)
	c.mu.RUnlock()

	for _, entry := range entries {
		start := time.Now()

		value, err := entry.desc.resolve(ctx, c, []string{entry.key})
		if err != nil {
			c.callRunHooks(entry.key, time.Since(start), err)
			return fmt.Errorf("resolving runnable %s: %w", entry.key, err)
		}

		runner, ok := value.(Runner)
		if !ok {
			err := fmt.Errorf("runnable %s does not implement Runner", entry.key)
			c.callRunHooks(entry.key, time.Since(start), err)
			return err
		}

		c.logger.Debug("running", "key", entry.key)
		err = runner.Run(ctx)
		c.callRunHooks(entry.key, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("runnable %s: %w", entry.key, err)
		}
	}

	return nil
}

// Runnables returns the keys of the runnable sequence in insertion order.
func (c *Container) Runnables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, len(c.runnables))
	for i, entry := range c.runnables {
		keys[i] = entry.key
	}
	return keys
}

func (c *Container) callRunHooks(key string, duration time.Duration, err error) {
	for _, hook := range c.onRun {
		hook(key, duration, err)
	}
}
