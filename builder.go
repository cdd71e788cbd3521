package adder

// Builder can build Adders.
type Builder struct {
	hooks []Hook
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{}
}

// WithHook adds a hook that is registered on every Adder built.
func (b Builder) WithHook(hook Hook) Builder {
	hooks := make([]Hook, 0, len(b.hooks)+1)
	hooks = append(hooks, b.hooks...)
	b.hooks = append(hooks, hook)

	return b
}

// Build creates a new Adder with the given name.
func (b Builder) Build(name string) *Adder {
	a := NewAdder(name)

	for _, hook := range b.hooks {
		a.AcceptHook(hook)
	}

	return a
}
