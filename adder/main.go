// Command adder adds 32-bit signed integers and checks the properties of the
// addition.
package main

import (
	"github.com/sarchlab/adder/adder/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
