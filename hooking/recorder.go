package hooking

import (
	"github.com/sarchlab/adder"
	"github.com/sarchlab/adder/datarecording"
)

// AdditionTableName is the table that AdditionRecorder writes into.
const AdditionTableName = "additions"

// AdditionEntry is a row of the additions table.
type AdditionEntry struct {
	ID       string
	Adder    string
	A        int32
	B        int32
	Sum      int32
	Overflow bool
}

// AdditionRecorder is a hook that records completed additions into a
// DataRecorder.
type AdditionRecorder struct {
	recorder datarecording.DataRecorder
}

// NewAdditionRecorder creates a new AdditionRecorder and the table it writes
// into.
func NewAdditionRecorder(
	recorder datarecording.DataRecorder,
) *AdditionRecorder {
	recorder.CreateTable(AdditionTableName, AdditionEntry{})

	return &AdditionRecorder{
		recorder: recorder,
	}
}

// Func records the addition if it is completed.
func (r *AdditionRecorder) Func(ctx adder.HookCtx) {
	if ctx.Pos != adder.HookPosAfterAdd {
		return
	}

	addition, ok := ctx.Item.(adder.Addition)
	if !ok {
		return
	}

	r.recorder.InsertData(AdditionTableName, AdditionEntry{
		ID:       addition.ID,
		Adder:    domainName(ctx.Domain),
		A:        addition.A,
		B:        addition.B,
		Sum:      addition.Sum,
		Overflow: addition.Overflowed(),
	})
}
