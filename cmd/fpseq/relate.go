// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/seqdb"
)

func newRelateCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "relate FROM TO",
		Short: "Find the shortest chain of relations linking two A-numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byField(a.cfg.Field,
				func() error { return runRelate[field.P65521](cmd, a, args, maxDepth) },
				func() error { return runRelate[field.M31](cmd, a, args, maxDepth) },
				func() error { return runRelate[field.M61](cmd, a, args, maxDepth) },
			)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "longest chain to try (0: unlimited)")

	return cmd
}

func runRelate[F field.Element[F]](cmd *cobra.Command, a *app, args []string, maxDepth int) error {
	db, err := loadDB[F](a)
	if err != nil {
		return err
	}
	idx := make([]int, 2)
	for k, arg := range args {
		id, err := seqdb.ParseID(arg)
		if err != nil {
			return err
		}
		if idx[k], err = db.Lookup(id); err != nil {
			return err
		}
	}

	g, err := seqdb.Relations(cmd.Context(), db, a.cfg.Workers)
	if err != nil {
		return err
	}
	log.Infof("%d relations over %d entries", len(g.Relations()), db.Len())
	w, err := g.Reach(cmd.Context(), idx[0], maxDepth)
	if err != nil {
		return err
	}
	path, err := w.PathTo(idx[1])
	if err != nil {
		return fmt.Errorf("%s to %s: %w", args[0], args[1], err)
	}
	out := cmd.OutOrStdout()
	for _, r := range path {
		printRelation(out, db, r)
	}

	return nil
}

// printRelation writes r as "A000027 = derive(A000012)".
func printRelation[F field.Element[F]](out io.Writer, db *seqdb.DB[F], r seqdb.Relation) {
	id := func(i int) string { return seqdb.FormatID(db.At(i).ID) }
	if r.Binary() {
		fmt.Fprintf(out, "%s = %s(%s, %s)\n", id(r.To), r.Op, id(r.From), id(r.With))
		return
	}
	fmt.Fprintf(out, "%s = %s(%s)\n", id(r.To), r.Op, id(r.From))
}
