// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the matrix display summary",
		Long: `Prints "Matrix: RxC" followed by the rows. Matrices with more cells than
--truncate-above show only the leading --corner rows and columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			label, _ := cmd.Flags().GetString("label")
			limit, _ := cmd.Flags().GetInt("truncate-above")
			corner, _ := cmd.Flags().GetInt("corner")
			if label == "" || limit < 0 || corner <= 0 {
				return fmt.Errorf("show: invalid display flags (label %q, truncate-above %d, corner %d)", label, limit, corner)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), matrix.Format(m,
				matrix.WithLabel(label),
				matrix.WithTruncateAbove(limit),
				matrix.WithCorner(corner),
			))
			return err
		},
	}
	cmd.Flags().String("label", matrix.DefaultLabel, "Header word of the summary")
	cmd.Flags().Int("truncate-above", matrix.DefaultTruncateAbove, "Cell count above which the display is truncated")
	cmd.Flags().Int("corner", matrix.DefaultCorner, "Rows and columns shown when truncated")

	return cmd
}
