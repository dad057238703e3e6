// Package rivet is a lock-phase dependency injection container for Go.
//
// A container is populated with declarative registrations while it is
// unlocked; the first resolution locks it permanently. Values are built
// lazily, on demand, by recursively resolving constructor parameters through
// the registration table.
//
// # Quick Start
//
//	c := rivet.New()
//
//	rivet.RegisterInstance(c, &Config{Port: 8080})
//	rivet.RegisterSingleton[*Database](c, NewDatabase)
//	rivet.RegisterSingleton[*Server](c, NewServer)
//
//	srv, err := rivet.Get[*Server](c)
//	...
//	c.Shutdown(ctx)
//
// Constructors are plain functions; their parameters are resolved by
// declared type:
//
//	func NewDatabase(cfg *Config) (*Database, error) { ... }
//	func NewServer(cfg *Config, db *Database) *Server { ... }
//
// # Lifetimes
//
// [Instance] wraps a value that already exists; the container never
// constructs it.
//
// [Singleton] constructs lazily on first Get and caches the instance for the
// container's lifetime. Construction is at-most-once even under concurrent
// first access.
//
// [Scoped] constructs a fresh instance on every resolution, including each
// appearance inside a single resolution tree.
//
// # Constructor selection
//
// A binding normally offers one constructor. When several candidates exist,
// mark the designated one with [Inject]:
//
//	rivet.RegisterSingleton[*DB](c, rivet.Constructors(
//	    rivet.Ctor(NewDB),
//	    rivet.Inject(NewPooledDB),
//	))
//
// Zero candidates, or several with no marker, fail with
// [ErrCodeNoUsableConstructor].
//
// # Locking
//
// The first Get, RunAll or Shutdown call flips the container's lock flag;
// the transition is monotonic and any later registration fails with
// [ErrCodeLocked]. Overwriting a binding (WithOverwrite) is a registration
// and follows the same rule.
//
// # Runnables
//
// Runnables are one-shot triggers kept in their own ordered sequence:
//
//	rivet.RegisterRunnable[*Migrator](c, NewMigrator)
//	rivet.RegisterRunnableInstance(c, &Banner{})
//
//	err := c.RunAll(ctx) // resolves and runs each, in order, fail-fast
//
// # Shutdown
//
// Shutdown walks the registration table in insertion order and closes every
// held value implementing io.Closer: registered instances and singletons
// that were actually constructed. Scoped bindings and never-constructed
// singletons are skipped. Release errors are collected; traversal always
// completes.
//
// # Interface binding
//
// Bind routes an interface key to a concrete implementation's key:
//
//	rivet.RegisterSingleton[*PostgresRepo](c, NewPostgresRepo)
//	rivet.Bind[Repo, *PostgresRepo](c)
//
// # Cycles
//
// A circular binding chain fails with [ErrCodeCircularDependency] naming the
// chain, instead of recursing without bound.
//
// # Observability
//
// Observers receive per-key timings for resolution, runnable execution and
// shutdown:
//
//	c := rivet.New(
//	    rivet.WithLogger(logger),
//	    rivet.WithResolveObserver(func(key string, d time.Duration, err error) {
//	        metrics.RecordResolve(key, d, err)
//	    }),
//	)
package rivet
