// Package hooking provides hooks that observe the additions performed by
// Adders.
package hooking

import (
	"log"

	"github.com/sarchlab/adder"
)

// AdditionLogger is a hook that prints every completed addition.
type AdditionLogger struct {
	*log.Logger
}

// NewAdditionLogger returns a new AdditionLogger which will write into the
// logger.
func NewAdditionLogger(logger *log.Logger) *AdditionLogger {
	return &AdditionLogger{Logger: logger}
}

// Func writes the addition into the logger.
func (h *AdditionLogger) Func(ctx adder.HookCtx) {
	if ctx.Pos != adder.HookPosAfterAdd {
		return
	}

	addition, ok := ctx.Item.(adder.Addition)
	if !ok {
		return
	}

	suffix := ""
	if addition.Overflowed() {
		suffix = " (overflow)"
	}

	h.Printf("%s: %d + %d = %d%s",
		domainName(ctx.Domain), addition.A, addition.B, addition.Sum, suffix)
}

func domainName(domain adder.Hookable) string {
	named, ok := domain.(adder.Named)
	if !ok {
		return "unknown"
	}

	return named.Name()
}
