package rivet_test

import (
	"testing"

	"github.com/rivet-di/rivet"
)

type widget struct {
	origin string
}

func newWidget() *widget        { return &widget{origin: "plain"} }
func newTestWidget() *widget    { return &widget{origin: "test"} }
func newSpecialWidget() *widget { return &widget{origin: "special"} }

func TestConstructorSelection_SingleCandidate(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	if err := rivet.RegisterSingleton[*widget](c, newWidget); err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}

	w, err := rivet.Get[*widget](c)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if w.origin != "plain" {
		t.Errorf("expected the single candidate, got %q", w.origin)
	}
}

func TestConstructorSelection_MarkedCandidateWins(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	err := rivet.RegisterSingleton[*widget](c, rivet.Constructors(
		rivet.Ctor(newWidget),
		rivet.Inject(newTestWidget),
		rivet.Ctor(newSpecialWidget),
	))
	if err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}

	w, err := rivet.Get[*widget](c)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if w.origin != "test" {
		t.Errorf("expected the marked candidate, got %q", w.origin)
	}
}

func TestConstructorSelection_FirstMarkedWins(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	err := rivet.RegisterSingleton[*widget](c, rivet.Constructors(
		rivet.Inject(newTestWidget),
		rivet.Inject(newSpecialWidget),
	))
	if err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}

	w, err := rivet.Get[*widget](c)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if w.origin != "test" {
		t.Errorf("expected the first marked candidate, got %q", w.origin)
	}
}

func TestConstructorSelection_AmbiguousFails(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	err := rivet.RegisterSingleton[*widget](c, rivet.Constructors(
		rivet.Ctor(newWidget),
		rivet.Ctor(newTestWidget),
	))
	if !rivet.IsNoUsableConstructor(err) {
		t.Fatalf("expected NoUsableConstructor, got %v", err)
	}
}

func TestConstructorSelection_EmptyFails(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	err := rivet.RegisterSingleton[*widget](c, rivet.Constructors())
	if !rivet.IsNoUsableConstructor(err) {
		t.Fatalf("expected NoUsableConstructor, got %v", err)
	}
}

func TestConstructorSelection_InvalidSignatures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor any
	}{
		{"not a function", 42},
		{"nil", nil},
		{"no return value", func() {}},
		{"wrong return type", func() string { return "" }},
		{"second return not error", func() (*widget, string) { return nil, "" }},
		{"variadic", func(xs ...int) *widget { return nil }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := rivet.New()
			err := rivet.RegisterSingleton[*widget](c, tc.ctor)
			if !rivet.IsNoUsableConstructor(err) {
				t.Fatalf("expected NoUsableConstructor, got %v", err)
			}
		})
	}
}

func TestRegisterScoped_ErrorReturningConstructor(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	if err := rivet.RegisterScoped[*widget](c, func() (*widget, error) {
		return nil, errBoom
	}); err != nil {
		t.Fatalf("RegisterScoped failed: %v", err)
	}

	_, err := rivet.Get[*widget](c)
	if !rivet.IsResolutionFailed(err) {
		t.Fatalf("expected ResolutionFailed, got %v", err)
	}
}
