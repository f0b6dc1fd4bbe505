// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/0xdomyz/sklearn-collection/table"
	"github.com/spf13/cobra"
)

// loadMatrix reads the YAML table at path, applies the column projection
// from config and flags, and builds a matrix.
func (a *app) loadMatrix(cmd *cobra.Command, path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := table.DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("table loaded", "path", path, "rows", tbl.NumRows(), "columns", tbl.Names())

	if len(a.cfg.Drop) > 0 {
		if tbl, err = tbl.Drop(a.cfg.Drop...); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if numericOnly, _ := cmd.Flags().GetBool("numeric-only"); numericOnly {
		if tbl, err = tbl.Numeric(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	m, err := matrix.FromTable(tbl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, cols := m.Shape()
	a.log.Info("matrix built", "path", path, "rows", rows, "cols", cols)

	return m, nil
}
