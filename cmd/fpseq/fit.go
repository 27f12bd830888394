// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/interpolate"
)

type fitFlags struct {
	maxOrder  int
	maxDegree int
	next      int
}

func newFitCmd(a *app) *cobra.Command {
	var ff fitFlags
	cmd := &cobra.Command{
		Use:   "fit TERMS...",
		Short: "Fit a linear, hypergeometric or holonomic recurrence and extend the sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-order") {
				a.cfg.MaxOrder = ff.maxOrder
			}
			if cmd.Flags().Changed("max-degree") {
				a.cfg.MaxDegree = ff.maxDegree
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return byField(a.cfg.Field,
				func() error { return runFit[field.P65521](cmd, a, ff.next, args) },
				func() error { return runFit[field.M31](cmd, a, ff.next, args) },
				func() error { return runFit[field.M61](cmd, a, ff.next, args) },
			)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&ff.maxOrder, "max-order", interpolate.DefaultMaxOrder, "largest recurrence order")
	fs.IntVar(&ff.maxDegree, "max-degree", interpolate.DefaultMaxDegree, "largest polynomial degree")
	fs.IntVar(&ff.next, "next", 8, "terms to predict")

	return cmd
}

func runFit[F field.Element[F]](cmd *cobra.Command, a *app, next int, args []string) error {
	s, err := parseTerms[F](args)
	if err != nil {
		return err
	}
	terms := s.Terms()
	out := cmd.OutOrStdout()

	rec, ok := interpolate.Guess(terms, a.cfg.FitOptions())
	if !ok {
		fmt.Fprintln(out, "no recurrence found")
		return nil
	}
	fmt.Fprintf(out, "%s (order %d, degree %d)\n", rec.Kind, rec.Order(), rec.Degree())
	fmt.Fprintln(out, rec)
	if next > 0 {
		more, err := rec.Extend(terms, next)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "next: %s\n", joinTerms(more))
	}

	return nil
}

func joinTerms[F field.Element[F]](xs []F) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}

	return strings.Join(parts, ",")
}
