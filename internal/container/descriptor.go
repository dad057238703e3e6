package container

import (
	"context"
	"sync"
	"sync/atomic"
)

// Descriptor produces a value for one binding. The variants map to the
// container's closed set of lifetimes.
type Descriptor interface {
	// Lifetime reports the descriptor's caching policy.
	Lifetime() Lifetime

	// Held returns the value the descriptor currently holds: the wrapped
	// value for Instance, the cached instance for a constructed Singleton.
	// ok is false for Scoped descriptors and unconstructed Singletons.
	Held() (value any, ok bool)

	// Dependencies returns the component keys of the descriptor's
	// construction parameters, in positional order. Nil for Instance.
	Dependencies() []string

	resolve(ctx context.Context, c *Container, path []string) (any, error)
}

// NewInstance wraps a pre-built value.
func NewInstance(value any) Descriptor {
	return &instanceDescriptor{value: value}
}

// NewSingleton creates a lazily-constructed, cached binding.
func NewSingleton(recipe *Recipe) Descriptor {
	return &singletonDescriptor{recipe: recipe}
}

// NewScoped creates a binding constructed fresh on every resolve.
func NewScoped(recipe *Recipe) Descriptor {
	return &scopedDescriptor{recipe: recipe}
}

type instanceDescriptor struct {
	value any
}

func (d *instanceDescriptor) Lifetime() Lifetime     { return Instance }
func (d *instanceDescriptor) Held() (any, bool)      { return d.value, true }
func (d *instanceDescriptor) Dependencies() []string { return nil }

func (d *instanceDescriptor) resolve(ctx context.Context, c *Container, path []string) (any, error) {
	return d.value, nil
}

// slot boxes a constructed singleton so a nil instance is distinguishable
// from "not yet constructed".
type slot struct {
	value any
}

type singletonDescriptor struct {
	recipe *Recipe

	mu   sync.Mutex
	once atomic.Pointer[slot]
}

func (d *singletonDescriptor) Lifetime() Lifetime { return Singleton }

func (d *singletonDescriptor) Held() (any, bool) {
	if s := d.once.Load(); s != nil {
		return s.value, true
	}
	return nil, false
}

func (d *singletonDescriptor) Dependencies() []string { return d.recipe.ParamKeys() }

func (d *singletonDescriptor) resolve(ctx context.Context, c *Container, path []string) (any, error) {
	if s := d.once.Load(); s != nil {
		return s.value, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if s := d.once.Load(); s != nil {
		return s.value, nil
	}

	value, err := d.recipe.construct(ctx, c, path)
	if err != nil {
		// Construction errors are not cached; a later resolve may retry.
		return nil, err
	}

	d.once.Store(&slot{value: value})
	c.logger.Debug("constructed singleton", "key", d.recipe.outName)
	return value, nil
}

// NewAlias routes resolution of one key through another. The alias holds no
// value of its own; the target's descriptor owns caching and release.
func NewAlias(target string) Descriptor {
	return &aliasDescriptor{target: target}
}

type aliasDescriptor struct {
	target string
}

func (d *aliasDescriptor) Lifetime() Lifetime     { return Alias }
func (d *aliasDescriptor) Held() (any, bool)      { return nil, false }
func (d *aliasDescriptor) Dependencies() []string { return []string{d.target} }

func (d *aliasDescriptor) resolve(ctx context.Context, c *Container, path []string) (any, error) {
	return c.resolve(ctx, d.target, path)
}

type scopedDescriptor struct {
	recipe *Recipe
}

func (d *scopedDescriptor) Lifetime() Lifetime     { return Scoped }
func (d *scopedDescriptor) Held() (any, bool)      { return nil, false }
func (d *scopedDescriptor) Dependencies() []string { return d.recipe.ParamKeys() }

func (d *scopedDescriptor) resolve(ctx context.Context, c *Container, path []string) (any, error) {
	return d.recipe.construct(ctx, c, path)
}
