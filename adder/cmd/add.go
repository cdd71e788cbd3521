package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print the sum of two 32-bit signed integers.",
		Long: "Print the sum of two 32-bit signed integers. Put negative " +
			"operands after `--`, for example `adder add -- -7 -3`.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			s, err := newSession(opts.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.adder.Add(a, b))

			return s.close()
		},
	}
}

func parseOperand(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}

	return int32(v), nil
}
