package rivet

import "log/slog"

type Option func(*containerConfig)

// WithLogger sets the structured logger used for debug output. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *containerConfig) {
		cfg.logger = logger
	}
}

// WithResolveObserver registers a hook called after every resolution.
func WithResolveObserver(hook ResolveHook) Option {
	return func(cfg *containerConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}

// WithRunObserver registers a hook called after every runnable execution.
func WithRunObserver(hook RunHook) Option {
	return func(cfg *containerConfig) {
		cfg.onRun = append(cfg.onRun, hook)
	}
}

// WithShutdownObserver registers a hook called after every release during
// shutdown.
func WithShutdownObserver(hook ShutdownHook) Option {
	return func(cfg *containerConfig) {
		cfg.onShutdown = append(cfg.onShutdown, hook)
	}
}
