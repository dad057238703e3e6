package rivet

import (
	"github.com/rivet-di/rivet/internal/container"
	"github.com/rivet-di/rivet/internal/reflect"
)

// Bind registers interface key I as an alias for implementation key T: a
// resolution of I looks up and resolves T through the live table. T must be
// registered separately; its lifetime governs caching.
//
//	rivet.RegisterSingleton[*PostgresRepo](c, NewPostgresRepo)
//	rivet.Bind[Repo, *PostgresRepo](c)
func Bind[I, T any](c *Container, opts ...BindingOption) error {
	cfg := applyBindingOptions(opts)

	interfaceKey := reflect.TypeKey[I]()
	if cfg.name != "" {
		interfaceKey = reflect.TypeKeyNamed[I](cfg.name)
	}
	implKey := reflect.TypeKey[T]()

	err := c.internal.Register(interfaceKey, container.NewAlias(implKey), cfg.overwrite)
	return wrapRegisterError(interfaceKey, err)
}

// BindNamed registers a named alias binding.
func BindNamed[I, T any](c *Container, name string, opts ...BindingOption) error {
	opts = append(opts, WithName(name))
	return Bind[I, T](c, opts...)
}
