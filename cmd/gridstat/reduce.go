// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/spf13/cobra"
)

// reducer pairs a whole-matrix reduction with its axis form.
type reducer struct {
	all  func(*matrix.Dense) float64
	axis func(*matrix.Dense, matrix.Axis) ([]float64, error)
}

var reducers = map[string]reducer{
	"sum":    {(*matrix.Dense).Sum, (*matrix.Dense).SumAxis},
	"mean":   {(*matrix.Dense).Mean, (*matrix.Dense).MeanAxis},
	"std":    {(*matrix.Dense).Std, (*matrix.Dense).StdAxis},
	"min":    {(*matrix.Dense).Min, (*matrix.Dense).MinAxis},
	"max":    {(*matrix.Dense).Max, (*matrix.Dense).MaxAxis},
	"median": {(*matrix.Dense).Median, (*matrix.Dense).MedianAxis},
	"zeros": {
		func(m *matrix.Dense) float64 { return float64(m.CountZeros()) },
		func(m *matrix.Dense, ax matrix.Axis) ([]float64, error) {
			counts, err := m.CountZerosAxis(ax)
			if err != nil {
				return nil, err
			}
			out := make([]float64, len(counts))
			for k, n := range counts {
				out[k] = float64(n)
			}
			return out, nil
		},
	},
}

func reducerNames() string {
	names := make([]string, 0, len(reducers))
	for name := range reducers {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// parseAxis maps "none", "0" and "1" to an optional axis.
func parseAxis(s string) (matrix.Axis, bool, error) {
	switch s {
	case "", "none":
		return 0, false, nil
	case "0":
		return matrix.AxisColumns, true, nil
	case "1":
		return matrix.AxisRows, true, nil
	}

	return 0, false, fmt.Errorf("axis %q: %w", s, matrix.ErrBadAxis)
}

func newReduceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce FILE",
		Short: "Reduce the matrix to a number or one number per lane",
		Long: `Applies a reduction (` + reducerNames() + `) to the whole matrix
(--axis none), down each column (--axis 0) or across each row (--axis 1).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, _ := cmd.Flags().GetString("op")
			r, ok := reducers[op]
			if !ok {
				return fmt.Errorf("reduce: unknown op %q (want one of %s)", op, reducerNames())
			}
			axisFlag, _ := cmd.Flags().GetString("axis")
			axis, hasAxis, err := parseAxis(axisFlag)
			if err != nil {
				return err
			}

			m, err := a.loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !hasAxis {
				_, err = fmt.Fprintf(out, "%s: %g\n", op, r.all(m))
				return err
			}
			vals, err := r.axis(m, axis)
			if err != nil {
				return err
			}
			a.log.Debug("reduced", "op", op, "axis", int(axis), "lanes", len(vals))
			_, err = fmt.Fprintf(out, "%s(axis=%d): %v\n", op, int(axis), vals)

			return err
		},
	}
	cmd.Flags().String("op", "sum", "Reduction: "+reducerNames())
	cmd.Flags().String("axis", "none", "none, 0 (per column) or 1 (per row)")

	return cmd
}
