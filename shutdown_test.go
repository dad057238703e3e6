package rivet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rivet-di/rivet"
)

type resourceA struct{ *resource }
type resourceB struct{ *resource }
type resourceC struct{ *resource }

func TestShutdown_ReleasesInRegistrationOrder(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	c := rivet.New()

	_ = rivet.RegisterInstance(c, &resourceA{&resource{name: "a", log: log}})
	_ = rivet.RegisterSingleton[*resourceB](c, func() *resourceB {
		return &resourceB{&resource{name: "b", log: log}}
	})
	_ = rivet.RegisterInstance(c, &resourceC{&resource{name: "c", log: log}})

	// Construct the singleton so it participates in shutdown.
	if _, err := rivet.Get[*resourceB](c); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if err := c.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	got := log.names()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("release order mismatch: expected %v, got %v", want, got)
		}
	}
}

func TestShutdown_SkipsUnconstructedSingletonsAndScoped(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	c := rivet.New()

	// Never resolved: holds nothing to release.
	_ = rivet.RegisterSingleton[*resourceA](c, func() *resourceA {
		return &resourceA{&resource{name: "lazy", log: log}}
	})

	// Scoped values are never held by the container.
	_ = rivet.RegisterScoped[*resourceB](c, func() *resourceB {
		return &resourceB{&resource{name: "scoped", log: log}}
	})
	if _, err := rivet.Get[*resourceB](c); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if err := c.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if got := log.names(); len(got) != 0 {
		t.Errorf("expected no releases, got %v", got)
	}
}

func TestShutdown_CollectsErrorsAndContinues(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	c := rivet.New()

	_ = rivet.RegisterInstance(c, &resourceA{&resource{name: "a", log: log, err: errBoom}})
	_ = rivet.RegisterInstance(c, &resourceB{&resource{name: "b", log: log}})

	err := c.Shutdown(context.Background())
	if !rivet.IsShutdownFailed(err) {
		t.Fatalf("expected ShutdownFailed, got %v", err)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("release error should be wrapped, got %v", err)
	}

	// The failing release did not abort the traversal.
	got := log.names()
	if len(got) != 2 || got[1] != "b" {
		t.Errorf("expected traversal to continue past the error, got %v", got)
	}
}

func TestShutdown_Idempotent(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	c := rivet.New()

	_ = rivet.RegisterInstance(c, &resourceA{&resource{name: "a", log: log}})

	if err := c.Shutdown(context.Background()); err != nil {
		t.Fatalf("first Shutdown failed: %v", err)
	}
	if err := c.Shutdown(context.Background()); err != nil {
		t.Fatalf("second Shutdown failed: %v", err)
	}

	if got := log.names(); len(got) != 1 {
		t.Errorf("expected exactly one release, got %v", got)
	}
}

func TestShutdown_LocksContainer(t *testing.T) {
	t.Parallel()

	c := rivet.New()

	if err := c.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !c.Locked() {
		t.Error("Shutdown should lock the container")
	}

	err := rivet.RegisterInstance(c, &Config{Port: 1})
	if !rivet.IsLocked(err) {
		t.Fatalf("expected Locked, got %v", err)
	}
}

func TestShutdown_DeadlineStopsTraversal(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	c := rivet.New()

	_ = rivet.RegisterInstance(c, &resourceA{&resource{name: "a", log: log}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Shutdown(ctx)
	if !rivet.IsShutdownFailed(err) {
		t.Fatalf("expected ShutdownFailed, got %v", err)
	}
	if got := log.names(); len(got) != 0 {
		t.Errorf("expected no releases after deadline, got %v", got)
	}
}
