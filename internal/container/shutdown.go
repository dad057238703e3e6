package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Shutdown locks the container and traverses the registration table in
// insertion order, closing every held value that implements io.Closer.
// Scoped bindings and never-constructed singletons hold nothing and are
// skipped.
//
// Release errors are collected and traversal continues; the joined errors
// are returned at the end. A second Shutdown call is a no-op.
func (c *Container) Shutdown(ctx context.Context) error {
	c.seal()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	order := make([]string, len(c.order))
	copy(order, c.order)
	c.mu.Unlock()

	var errs []error
	for _, key := range order {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("shutdown deadline exceeded: %w", err))
			break
		}

		d, lookupErr := c.Lookup(key)
		if lookupErr != nil {
			continue
		}

		value, ok := d.Held()
		if !ok {
			continue
		}

		closer, ok := value.(io.Closer)
		if !ok {
			continue
		}

		start := time.Now()
		c.logger.Debug("releasing", "key", key)
		err := closer.Close()
		c.callShutdownHooks(key, time.Since(start), err)

		if err != nil {
			errs = append(errs, fmt.Errorf("releasing %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (c *Container) callShutdownHooks(key string, duration time.Duration, err error) {
	for _, hook := range c.onShutdown {
		hook(key, duration, err)
	}
}
