// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/spf13/cobra"
)

func newScaleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale FILE",
		Short: "Print (m * by) + add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			by, _ := cmd.Flags().GetFloat64("by")
			add, _ := cmd.Flags().GetFloat64("add")

			m, err := a.loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			scaled, err := m.Mul(by)
			if err != nil {
				return err
			}
			if scaled, err = scaled.Add(add); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), matrix.Format(scaled))

			return err
		},
	}
	cmd.Flags().Float64("by", 1, "Scalar factor")
	cmd.Flags().Float64("add", 0, "Scalar offset added after scaling")

	return cmd
}
