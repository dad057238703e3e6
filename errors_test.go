package rivet_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rivet-di/rivet"
)

type selfRef struct{}

type mutualA struct{}
type mutualB struct{}

func TestCircularDependency_Self(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	_ = rivet.RegisterSingleton[*selfRef](c, func(s *selfRef) *selfRef {
		return s
	})

	_, err := rivet.Get[*selfRef](c)
	if !rivet.IsCircularDependency(err) {
		t.Fatalf("expected CircularDependency, got %v", err)
	}

	var e *rivet.Error
	if !errors.As(err, &e) {
		t.Fatal("expected a *rivet.Error")
	}
	if len(e.Chain) == 0 {
		t.Error("circular error should carry the chain")
	}
}

func TestCircularDependency_Mutual(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	_ = rivet.RegisterSingleton[*mutualA](c, func(b *mutualB) *mutualA { return &mutualA{} })
	_ = rivet.RegisterSingleton[*mutualB](c, func(a *mutualA) *mutualB { return &mutualB{} })

	_, err := rivet.Get[*mutualA](c)
	if !rivet.IsCircularDependency(err) {
		t.Fatalf("expected CircularDependency, got %v", err)
	}
	if !strings.Contains(err.Error(), "mutualA") || !strings.Contains(err.Error(), "mutualB") {
		t.Errorf("chain should name both keys: %v", err)
	}
}

func TestErrorCodeString(t *testing.T) {
	t.Parallel()

	cases := map[rivet.ErrorCode]string{
		rivet.ErrCodeAlreadyRegistered:   "ALREADY_REGISTERED",
		rivet.ErrCodeLocked:              "LOCKED",
		rivet.ErrCodeDependencyNotFound:  "DEPENDENCY_NOT_FOUND",
		rivet.ErrCodeNoUsableConstructor: "NO_USABLE_CONSTRUCTOR",
		rivet.ErrCodeCircularDependency:  "CIRCULAR_DEPENDENCY",
		rivet.ErrorCode(9999):            "UNKNOWN(9999)",
	}

	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("code %d: expected %q, got %q", uint16(code), want, got)
		}
	}
}

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	_, err := rivet.Get[*Config](c)
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "DEPENDENCY_NOT_FOUND") {
		t.Errorf("message should contain the code: %q", msg)
	}
	if !strings.Contains(msg, "Config") {
		t.Errorf("message should name the key: %q", msg)
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	_, err := rivet.Get[*Config](c)

	target := &rivet.Error{Code: rivet.ErrCodeDependencyNotFound}
	if !errors.Is(err, target) {
		t.Error("errors with the same code should match via errors.Is")
	}

	other := &rivet.Error{Code: rivet.ErrCodeLocked}
	if errors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}
}
