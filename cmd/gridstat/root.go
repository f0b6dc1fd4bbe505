// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands once the root has run.
type app struct {
	cfg config
	log *slog.Logger
}

// newRootCmd builds the command tree. Each call returns independent flags.
func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "gridstat",
		Short: "gridstat summarizes numeric YAML tables as matrices",
		Long: `gridstat reads a YAML table document, keeps its numeric columns and
prints the matrix display, reductions, comparison masks or scaled copies.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (env GRIDSTAT_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (env GRIDSTAT_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringSlice("drop", nil, "Columns to drop before building the matrix (env GRIDSTAT_DROP)")
	rootCmd.PersistentFlags().Bool("numeric-only", false, "Keep only numeric columns")

	rootCmd.AddCommand(
		newShowCmd(a),
		newReduceCmd(a),
		newCompareCmd(a),
		newScaleCmd(a),
		newDoubleCmd(a),
	)

	return rootCmd
}

// setup merges env and flags into a.cfg and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := parseEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("drop") {
		cfg.Drop, _ = flags.GetStringSlice("drop")
	}

	if err = cfg.Validate(); err != nil {
		return err
	}

	// Configure logger
	opts := &slog.HandlerOptions{Level: cfg.level()}
	var h slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}
	a.cfg = cfg
	a.log = slog.New(h)

	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
