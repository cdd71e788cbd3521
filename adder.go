// Package adder provides 32-bit signed integer addition and a hookable Adder
// component that lets observers see every addition it performs.
package adder

import "math"

// Add returns a + b. The sum wraps around on overflow, following int32
// two's-complement arithmetic.
func Add(a, b int32) int32 {
	return a + b
}

// MaxInt is the largest value an Adder operand can hold.
const MaxInt int32 = math.MaxInt32

// MinInt is the smallest value an Adder operand can hold.
const MinInt int32 = math.MinInt32

// An Addition describes one addition performed by an Adder.
type Addition struct {
	ID  string
	A   int32
	B   int32
	Sum int32
}

// Overflowed reports whether the sum wrapped around.
func (a Addition) Overflowed() bool {
	return int64(a.A)+int64(a.B) != int64(a.Sum)
}

// An Adder is a named component that adds integers. Hooks registered on the
// Adder observe each addition but never change its result.
type Adder struct {
	HookableBase

	name string
}

// NewAdder creates an Adder with the given name.
func NewAdder(name string) *Adder {
	return &Adder{name: name}
}

// Name returns the name of the Adder.
func (a *Adder) Name() string {
	return a.name
}

// Add returns x + y with the same semantics as the package level Add.
func (a *Adder) Add(x, y int32) int32 {
	if a.NumHooks() == 0 {
		return Add(x, y)
	}

	addition := Addition{
		ID: GetIDGenerator().Generate(),
		A:  x,
		B:  y,
	}
	a.InvokeHook(HookCtx{
		Domain: a,
		Pos:    HookPosBeforeAdd,
		Item:   addition,
	})

	sum := Add(x, y)

	addition.Sum = sum
	a.InvokeHook(HookCtx{
		Domain: a,
		Pos:    HookPosAfterAdd,
		Item:   addition,
	})

	return sum
}
