// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xdomyz/sklearn-collection/tagged"
	"github.com/spf13/cobra"
)

// fileTag tags a matrix with its file name without extension.
func fileTag(path string) tagged.Tag[string] {
	base := filepath.Base(path)

	return tagged.Some(strings.TrimSuffix(base, filepath.Ext(base)))
}

func newDoubleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "double FILE [OTHER]",
		Short: "Print 2*FILE, or 2*FILE - OTHER, tagged with FILE's name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			x, err := tagged.New(m, fileTag(args[0]))
			if err != nil {
				return err
			}

			var res *tagged.Tagged[string]
			if len(args) == 1 {
				res, err = x.Double()
			} else {
				var o *tagged.Tagged[string]
				other, lerr := a.loadMatrix(cmd, args[1])
				if lerr != nil {
					return lerr
				}
				if o, err = tagged.New(other, fileTag(args[1])); err != nil {
					return err
				}
				res, err = x.DoubleSub(o)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)

			return err
		},
	}
}
