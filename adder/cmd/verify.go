package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sarchlab/adder"
	"github.com/sarchlab/adder/monitoring"
	"github.com/spf13/cobra"
)

type literalCase struct {
	a, b, sum int32
}

var literalCases = []literalCase{
	{5, 3, 8},
	{-7, -3, -10},
	{5, -3, 2},
	{1000000, 2000000, 3000000},
	{adder.MaxInt - 100, 50, adder.MaxInt - 50},
	{adder.MaxInt, 1, adder.MinInt},
}

var errPropertyViolated = errors.New("addition properties violated")

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var (
		samples uint64
		seed    int64
	)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the algebraic properties of the addition.",
		Long: "Check commutativity, the additive identity, the inverse, and " +
			"a set of literal cases over random 32-bit operands.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c := &checker{
				adder: s.adder,
				rand:  rand.New(rand.NewSource(seed)),
				out:   cmd.OutOrStdout(),
			}

			if s.monitor != nil {
				c.bar = s.monitor.CreateProgressBar("verify", samples)
				defer s.monitor.CompleteProgressBar(c.bar)
			}

			c.run(samples)

			err = s.close()
			if err != nil {
				return err
			}

			if c.violations > 0 {
				return fmt.Errorf("%w: %d violations",
					errPropertyViolated, c.violations)
			}

			return nil
		},
	}

	verifyCmd.Flags().Uint64Var(&samples, "samples", 10000,
		"The number of random operand pairs to check.")
	verifyCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(),
		"The seed of the random operands.")

	return verifyCmd
}

type checker struct {
	adder      adder.Component
	rand       *rand.Rand
	out        io.Writer
	bar        *monitoring.ProgressBar
	violations int
}

func (c *checker) run(samples uint64) {
	for _, lc := range literalCases {
		sum := c.adder.Add(lc.a, lc.b)
		if sum != lc.sum {
			c.report("%d + %d = %d, expected %d", lc.a, lc.b, sum, lc.sum)
		}
	}

	for i := uint64(0); i < samples; i++ {
		if c.bar != nil {
			c.bar.IncrementInProgress(1)
		}

		c.checkPair(int32(c.rand.Uint32()), int32(c.rand.Uint32()))

		if c.bar != nil {
			c.bar.MoveInProgressToFinished(1)
		}
	}

	fmt.Fprintf(c.out, "checked %d literal cases and %d samples, %d violations\n",
		len(literalCases), samples, c.violations)
}

func (c *checker) checkPair(a, b int32) {
	if ab, ba := c.adder.Add(a, b), c.adder.Add(b, a); ab != ba {
		c.report("not commutative: %d + %d = %d, %d + %d = %d",
			a, b, ab, b, a, ba)
	}

	if sum := c.adder.Add(a, 0); sum != a {
		c.report("zero is not the identity: %d + 0 = %d", a, sum)
	}

	if sum := c.adder.Add(a, -a); sum != 0 {
		c.report("no inverse: %d + %d = %d", a, -a, sum)
	}
}

func (c *checker) report(format string, args ...any) {
	c.violations++
	fmt.Fprintf(c.out, "violation: "+format+"\n", args...)
}
