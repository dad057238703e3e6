package container

import (
	"context"
	"fmt"
	"reflect"

	rv "github.com/rivet-di/rivet/internal/reflect"
)

// Candidate is one construction recipe offered for a binding.
type Candidate struct {
	Fn     any
	Inject bool
}

// Select chooses exactly one candidate:
//
//   - zero candidates fail
//   - a single candidate is taken as-is
//   - among several, the first one marked Inject wins; no marks fail
//
// Select is a pure function over the candidate metadata; it never inspects
// the functions themselves.
func Select(candidates []Candidate) (Candidate, error) {
	switch len(candidates) {
	case 0:
		return Candidate{}, fmt.Errorf("%w: no constructors offered", ErrNoUsableConstructor)
	case 1:
		return candidates[0], nil
	}

	for _, c := range candidates {
		if c.Inject {
			return c, nil
		}
	}

	return Candidate{}, fmt.Errorf(
		"%w: %d constructors offered and none marked for injection",
		ErrNoUsableConstructor, len(candidates),
	)
}

type param struct {
	key string
	typ reflect.Type
}

// Recipe is a validated construction recipe: a constructor function plus the
// component keys of its parameters, bound positionally.
type Recipe struct {
	fn      reflect.Value
	params  []param
	hasErr  bool
	outName string
}

// NewRecipe validates fn as a constructor producing a value assignable to
// out, and derives the component key of each parameter from its declared
// type. Only base type identity is used for parameter keys.
func NewRecipe(fn any, out reflect.Type) (*Recipe, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: constructor is nil", ErrNoUsableConstructor)
	}

	val := reflect.ValueOf(fn)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: constructor must be a function, got %s", ErrNoUsableConstructor, typ)
	}

	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return nil, fmt.Errorf("%w: constructor must return (T) or (T, error)", ErrNoUsableConstructor)
	}

	hasErr := false
	if typ.NumOut() == 2 {
		errType := reflect.TypeOf((*error)(nil)).Elem()
		if !typ.Out(1).Implements(errType) {
			return nil, fmt.Errorf("%w: second return value must be an error", ErrNoUsableConstructor)
		}
		hasErr = true
	}

	if out != nil && !typ.Out(0).AssignableTo(out) {
		return nil, fmt.Errorf(
			"%w: constructor returns %s, not assignable to %s",
			ErrNoUsableConstructor, typ.Out(0), out,
		)
	}

	if typ.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic constructors are not supported", ErrNoUsableConstructor)
	}

	params := make([]param, typ.NumIn())
	for i := range params {
		params[i] = param{
			key: rv.TypeKeyOf(typ.In(i)),
			typ: typ.In(i),
		}
	}

	return &Recipe{
		fn:      val,
		params:  params,
		hasErr:  hasErr,
		outName: rv.TypeKeyOf(typ.Out(0)),
	}, nil
}

// ParamKeys returns the component keys of the recipe's parameters in
// declaration order.
func (r *Recipe) ParamKeys() []string {
	keys := make([]string, len(r.params))
	for i, p := range r.params {
		keys[i] = p.key
	}
	return keys
}

// construct resolves each parameter through the container and invokes the
// constructor with the results bound positionally.
func (r *Recipe) construct(ctx context.Context, c *Container, path []string) (any, error) {
	args := make([]reflect.Value, len(r.params))
	for i, p := range r.params {
		dep, err := c.resolve(ctx, p.key, path)
		if err != nil {
			return nil, fmt.Errorf("parameter %d (%s): %w", i, p.key, err)
		}

		if dep == nil {
			args[i] = reflect.Zero(p.typ)
		} else {
			args[i] = reflect.ValueOf(dep)
		}
	}

	results := r.fn.Call(args)
	if r.hasErr && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}

	return results[0].Interface(), nil
}
