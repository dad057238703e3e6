package rivet

import (
	"github.com/rivet-di/rivet/internal/container"
	"github.com/rivet-di/rivet/internal/reflect"
)

type BindingOption func(*bindingConfig)

type bindingConfig struct {
	name      string
	overwrite bool
}

// WithName registers the binding under an aliased key instead of the bare
// type key, so several bindings of one type can coexist.
func WithName(name string) BindingOption {
	return func(cfg *bindingConfig) {
		cfg.name = name
	}
}

// WithOverwrite replaces an existing binding for the same key. The binding
// keeps its original insertion position.
func WithOverwrite() BindingOption {
	return func(cfg *bindingConfig) {
		cfg.overwrite = true
	}
}

// Candidate is one constructor offered for a binding.
type Candidate struct {
	fn     any
	inject bool
}

// Ctor wraps a plain constructor function.
func Ctor(fn any) Candidate {
	return Candidate{fn: fn}
}

// Inject wraps a constructor and marks it as the designated injection
// constructor. When several candidates are offered, the first marked one is
// selected.
func Inject(fn any) Candidate {
	return Candidate{fn: fn, inject: true}
}

// CandidateSet is an explicit set of candidate constructors for one binding.
type CandidateSet []Candidate

// Constructors builds a candidate set:
//
//	rivet.RegisterSingleton[*DB](c, rivet.Constructors(
//	    rivet.Ctor(NewDB),
//	    rivet.Inject(NewPooledDB),
//	))
func Constructors(candidates ...Candidate) CandidateSet {
	return CandidateSet(candidates)
}

// RegisterInstance binds an existing value under T's type key. The value is
// never constructed by the container, but it participates in shutdown if it
// implements io.Closer.
func RegisterInstance[T any](c *Container, value T, opts ...BindingOption) error {
	cfg := applyBindingOptions(opts)

	key := reflect.TypeKey[T]()
	if cfg.name != "" {
		key = reflect.TypeKeyNamed[T](cfg.name)
	}

	err := c.internal.Register(key, container.NewInstance(value), cfg.overwrite)
	return wrapRegisterError(key, err)
}

// RegisterSingleton binds a lazily-constructed, cached value under T's type
// key. ctor is a single constructor function — func(deps...) T or
// func(deps...) (T, error) — or a CandidateSet built with Constructors.
//
// Constructor parameters are resolved through the container by their
// declared types when the singleton is first requested.
func RegisterSingleton[T any](c *Container, ctor any, opts ...BindingOption) error {
	return registerRecipe[T](c, ctor, container.NewSingleton, opts)
}

// RegisterScoped binds a value constructed fresh on every resolution, even
// within a single resolution tree. Scoped values never participate in
// shutdown.
func RegisterScoped[T any](c *Container, ctor any, opts ...BindingOption) error {
	return registerRecipe[T](c, ctor, container.NewScoped, opts)
}

func registerRecipe[T any](
	c *Container,
	ctor any,
	wrap func(*container.Recipe) container.Descriptor,
	opts []BindingOption,
) error {
	cfg := applyBindingOptions(opts)

	key := reflect.TypeKey[T]()
	if cfg.name != "" {
		key = reflect.TypeKeyNamed[T](cfg.name)
	}

	recipe, err := buildRecipe[T](ctor)
	if err != nil {
		return wrapRegisterError(key, err)
	}

	err = c.internal.Register(key, wrap(recipe), cfg.overwrite)
	return wrapRegisterError(key, err)
}

func buildRecipe[T any](ctor any) (*container.Recipe, error) {
	var candidates []container.Candidate

	switch v := ctor.(type) {
	case CandidateSet:
		candidates = make([]container.Candidate, len(v))
		for i, cand := range v {
			candidates[i] = container.Candidate{Fn: cand.fn, Inject: cand.inject}
		}
	case Candidate:
		candidates = []container.Candidate{{Fn: v.fn, Inject: v.inject}}
	default:
		candidates = []container.Candidate{{Fn: v}}
	}

	selected, err := container.Select(candidates)
	if err != nil {
		return nil, err
	}

	return container.NewRecipe(selected.Fn, reflect.TypeOf[T]())
}

func applyBindingOptions(opts []BindingOption) *bindingConfig {
	cfg := &bindingConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
