package rivet

// Module is a named group of registrations applied to a container as a unit,
// before the lock-flag transition. Modules can include other modules;
// included modules register first.
type Module struct {
	name          string
	registrations []func(c *Container) error
	submodules    []*Module
}

func NewModule(name string) *Module {
	return &Module{name: name}
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Include(submodule *Module) *Module {
	m.submodules = append(m.submodules, submodule)
	return m
}

func (m *Module) apply(c *Container) error {
	for _, sub := range m.submodules {
		if err := sub.apply(c); err != nil {
			return err
		}
	}

	for _, register := range m.registrations {
		if err := register(c); err != nil {
			return err
		}
	}

	return nil
}

// Apply registers every binding of the given modules, in order. The first
// registration failure aborts and is returned with the module's name.
func (c *Container) Apply(modules ...*Module) error {
	for _, m := range modules {
		if err := m.apply(c); err != nil {
			return newError(ErrCodeModuleApplyFailed, "failed to apply module "+m.name, err)
		}
	}
	return nil
}

func ModuleInstance[T any](m *Module, value T, opts ...BindingOption) *Module {
	m.registrations = append(m.registrations, func(c *Container) error {
		return RegisterInstance(c, value, opts...)
	})
	return m
}

func ModuleSingleton[T any](m *Module, ctor any, opts ...BindingOption) *Module {
	m.registrations = append(m.registrations, func(c *Container) error {
		return RegisterSingleton[T](c, ctor, opts...)
	})
	return m
}

func ModuleScoped[T any](m *Module, ctor any, opts ...BindingOption) *Module {
	m.registrations = append(m.registrations, func(c *Container) error {
		return RegisterScoped[T](c, ctor, opts...)
	})
	return m
}

func ModuleBind[I, T any](m *Module, opts ...BindingOption) *Module {
	m.registrations = append(m.registrations, func(c *Container) error {
		return Bind[I, T](c, opts...)
	})
	return m
}

func ModuleRunnable[T Runner](m *Module, ctor any) *Module {
	m.registrations = append(m.registrations, func(c *Container) error {
		return RegisterRunnable[T](c, ctor)
	})
	return m
}
