// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply OPS TERMS...",
		Short: "Apply a '|'-separated chain of unary operators, e.g. 'binomial|euler'",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byField(a.cfg.Field,
				func() error { return runApply[field.P65521](cmd, args) },
				func() error { return runApply[field.M31](cmd, args) },
				func() error { return runApply[field.M61](cmd, args) },
			)
		},
	}
}

func runApply[F field.Element[F]](cmd *cobra.Command, args []string) error {
	s, err := parseTerms[F](args[1:])
	if err != nil {
		return err
	}
	names := strings.Split(args[0], series.ChainSep)
	got, err := series.ApplyChain(s, names)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), got)

	return nil
}
