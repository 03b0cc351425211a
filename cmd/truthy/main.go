// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

// Package main implements the truthy command line tool.
//
// Usage:
//
//	truthy classify yes No orange
//	truthy check "$ENABLE_FEATURE" && echo enabled
//	truthy --terms custom.yaml terms
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// exitCodeError is returned when the tool fails before producing a result.
const exitCodeError = 3

// cliOptions holds flag values shared by all commands.
type cliOptions struct {
	logger     *zap.Logger
	profileDir string
	profile    string
	termsFiles []string
	verbose    bool
	explain    bool
}

// exitError carries a process exit code out of a command.
type exitError struct {
	label string
	code  int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%s (exit %d)", e.label, e.code)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeError)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "truthy",
		Short: "Classify strings as truey, falsey or unclassified",
		Long: `truthy classifies text tokens by boolean intent.

Terms are taken from, in order of preference:
  - a named profile (--profile) in the profile directory (--profile-dir)
  - merged terms files (--terms)
  - the built-in stock terms`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVar(&opts.termsFiles, "terms", envList("TRUTHY_TERMS"), "terms files merged in order (env TRUTHY_TERMS)")
	flags.StringVar(&opts.profileDir, "profile-dir", envOr("TRUTHY_PROFILE_DIR", "."), "directory holding profile files (env TRUTHY_PROFILE_DIR)")
	flags.StringVar(&opts.profile, "profile", "", "profile name to classify with")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newClassifyCmd(opts),
		newCheckCmd(opts),
		newTermsCmd(opts),
	)

	return rootCmd
}

// envOr returns environment value or fallback when unset.
// newLogger builds a production JSON logger writing to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core, zap.AddCaller())
}

func envOr(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

// envList splits comma-separated environment value.
func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
