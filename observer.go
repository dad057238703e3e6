package rivet

import "github.com/rivet-di/rivet/internal/container"

// ResolveHook observes one resolution: the component key, how long it took
// and the error, if any. Intended for metrics integration.
type ResolveHook = container.ResolveHook

// RunHook observes one runnable execution.
type RunHook = container.RunHook

// ShutdownHook observes one release-hook invocation during shutdown.
type ShutdownHook = container.ShutdownHook
