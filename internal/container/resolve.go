package container

import (
	"context"
	"time"
)

// Resolve locks the container and produces the value bound to key. Safe
// under arbitrary concurrent callers; singleton construction remains
// at-most-once per descriptor.
func (c *Container) Resolve(ctx context.Context, key string) (any, error) {
	c.seal()
	return c.resolve(ctx, key, nil)
}

// resolve is the recursive engine. path holds the keys currently being
// constructed on this call stack; revisiting one is a cycle.
func (c *Container) resolve(ctx context.Context, key string, path []string) (any, error) {
	start := time.Now()

	for _, p := range path {
		if p == key {
			err := &CycleError{Chain: append(append([]string{}, path...), key)}
			c.callResolveHooks(key, time.Since(start), err)
			return nil, err
		}
	}

	d, err := c.Lookup(key)
	if err != nil {
		c.callResolveHooks(key, time.Since(start), err)
		return nil, err
	}

	value, err := d.resolve(ctx, c, append(path, key))
	c.callResolveHooks(key, time.Since(start), err)
	return value, err
}

func (c *Container) callResolveHooks(key string, duration time.Duration, err error) {
	for _, hook := range c.onResolve {
		hook(key, duration, err)
	}
}
