// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/search"
	"github.com/katalvlaran/fpseq/seqdb"
)

func newSearchCmd(a *app) *cobra.Command {
	var topK int
	cmd := &cobra.Command{
		Use:   "search TERMS...",
		Short: "Match a sequence against the database and fit recurrences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("top") {
				a.cfg.TopK = topK
			}
			return byField(a.cfg.Field,
				func() error { return runSearch[field.P65521](cmd, a, args) },
				func() error { return runSearch[field.M31](cmd, a, args) },
				func() error { return runSearch[field.M61](cmd, a, args) },
			)
		},
	}
	cmd.Flags().IntVar(&topK, "top", search.DefaultTopK, "number of matches to show")

	return cmd
}

func runSearch[F field.Element[F]](cmd *cobra.Command, a *app, args []string) error {
	query, err := parseTerms[F](args)
	if err != nil {
		return err
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}
	db, err := loadDB[F](a, seqdb.WithMinTerms(a.cfg.MinMatch))
	if err != nil {
		return err
	}
	eng, err := search.New(db, a.cfg.SearchOptions()...)
	if err != nil {
		return err
	}
	res, err := eng.Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(res.Matches) == 0 {
		fmt.Fprintln(out, "no database matches")
	}
	for _, m := range res.Matches {
		fmt.Fprintf(out, "%s  %-12s score %3d  (%d terms, cost %d)\n",
			seqdb.FormatID(m.ID), m.Op, m.Score, m.Matched, m.Cost)
	}
	for _, f := range res.Fits {
		fmt.Fprintf(out, "%s: %s recurrence %s\n", f.Op, f.Recurrence.Kind, f.Recurrence)
		if len(f.Next) > 0 {
			fmt.Fprintf(out, "  next: %s\n", joinTerms(f.Next))
		}
	}

	return nil
}
