package container

// Lifetime is the caching policy of a descriptor.
type Lifetime int

const (
	// Instance wraps a pre-built value. No construction step, ever.
	Instance Lifetime = iota

	// Singleton constructs lazily on first resolve and caches the result
	// for the lifetime of the container.
	Singleton

	// Scoped constructs a fresh value on every resolve, even within a
	// single resolution tree.
	Scoped

	// Alias routes resolution through another key. The target descriptor
	// owns caching and release.
	Alias
)

func (l Lifetime) String() string {
	switch l {
	case Instance:
		return "instance"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Alias:
		return "alias"
	default:
		return "unknown"
	}
}
