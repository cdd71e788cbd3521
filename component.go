package adder

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is an element that performs additions and can be observed.
type Component interface {
	Named
	Hookable

	Add(a, b int32) int32
}

var _ Component = (*Adder)(nil)
