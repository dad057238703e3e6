package rivet

import "github.com/rivet-di/rivet/internal/container"

// Lifetime is the caching policy of a binding.
type Lifetime = container.Lifetime

const (
	Instance  = container.Instance
	Singleton = container.Singleton
	Scoped    = container.Scoped
	AliasKind = container.Alias
)
