// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/truthy"
)

func newClassifyCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [values...]",
		Short: "Classify values, one result per line",
		Long: `Prints "<value>\t<truey|falsey|unclassified>" for every value.
Without arguments, values are read line by line from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, arg := range args {
					if err := writeDecision(out, arg, c.Classify(arg), opts.explain); err != nil {
						return err
					}
				}

				return nil
			}

			s := bufio.NewScanner(cmd.InOrStdin())
			for s.Scan() {
				line := s.Text()
				if err := writeDecision(out, line, c.Classify(line), opts.explain); err != nil {
					return err
				}
			}

			if err := s.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.explain, "explain", false, "append matched list and term")
	return cmd
}

func newCheckCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <value>",
		Short: "Exit 0 when truey, 1 when falsey, 2 when unclassified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}

			d := c.Classify(args[0])
			opts.logger.Debug("Checked value",
				zap.String("value", args[0]),
				zap.String("result", d.Label()),
				zap.Stringer("list", d.List))

			switch {
			case !d.Classified:
				return &exitError{label: d.Label(), code: 2}
			case !d.Truey:
				return &exitError{label: d.Label(), code: 1}
			default:
				return nil
			}
		},
	}
}

func newTermsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "Print the effective terms as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c.Terms()); err != nil {
				return fmt.Errorf("encode terms: %w", err)
			}

			return enc.Close()
		},
	}
}

// classifier resolves the classifier selected by flags.
func (o *cliOptions) classifier() (*truthy.Classifier, error) {
	switch {
	case o.profile != "":
		p, err := truthy.NewProvider(o.profileDir, truthy.ProviderOptions{})
		if err != nil {
			return nil, err
		}

		o.logger.Debug("Using profile",
			zap.String("profile", o.profile),
			zap.String("dir", p.Root()))

		return p.Classifier(o.profile)

	case len(o.termsFiles) > 0:
		terms, err := truthy.LoadTermsFiles(o.termsFiles...)
		if err != nil {
			return nil, err
		}

		o.logger.Debug("Using terms files", zap.Strings("files", o.termsFiles))
		return truthy.NewClassifier(terms), nil

	default:
		o.logger.Debug("Using stock terms")
		return truthy.NewClassifier(truthy.Terms{}), nil
	}
}

// writeDecision prints one classification line.
func writeDecision(w io.Writer, value string, d truthy.Decision, explain bool) error {
	var err error
	if explain {
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", value, d.Label(), d.List, d.Term)
	} else {
		_, err = fmt.Fprintf(w, "%s\t%s\n", value, d.Label())
	}

	return err
}
