// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/spf13/cobra"
)

var comparators = map[string]func(*matrix.Dense, any) (*matrix.Mask, error){
	"lt":  (*matrix.Dense).Lt,
	"le":  (*matrix.Dense).Le,
	"gt":  (*matrix.Dense).Gt,
	"ge":  (*matrix.Dense).Ge,
	"eq":  (*matrix.Dense).Eq,
	"and": (*matrix.Dense).And,
	"or":  (*matrix.Dense).Or,
}

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Compare every cell with a value and print the mask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, _ := cmd.Flags().GetString("op")
			f, ok := comparators[op]
			if !ok {
				return fmt.Errorf("compare: unknown op %q (want lt, le, gt, ge, eq, and, or)", op)
			}
			value, _ := cmd.Flags().GetFloat64("value")

			m, err := a.loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			mask, err := f(m, value)
			if err != nil {
				return err
			}
			a.log.Debug("compared", "op", op, "value", value, "matches", mask.Count())

			out := cmd.OutOrStdout()
			if _, err = fmt.Fprint(out, mask); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "matches: %d\n", mask.Count())

			return err
		},
	}
	cmd.Flags().String("op", "lt", "Comparison: lt, le, gt, ge, eq, and, or")
	cmd.Flags().Float64("value", 0, "Scalar right-hand operand")

	return cmd
}
