// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/seqdb"
)

func newConnectivityCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "connectivity",
		Short: "Rank database entries by how many relations they take part in",
		Long: "Rank database entries by how many unary and pairwise relations they take\n" +
			"part in. The pairwise scan is quadratic in the database size.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return byField(a.cfg.Field,
				func() error { return runConnectivity[field.P65521](cmd, a, top) },
				func() error { return runConnectivity[field.M31](cmd, a, top) },
				func() error { return runConnectivity[field.M61](cmd, a, top) },
			)
		},
	}
	cmd.Flags().IntVar(&top, "top", 20, "entries to show (0: all)")

	return cmd
}

func runConnectivity[F field.Element[F]](cmd *cobra.Command, a *app, top int) error {
	db, err := loadDB[F](a)
	if err != nil {
		return err
	}
	conns, err := seqdb.Connectivity(cmd.Context(), db, a.cfg.Workers)
	if err != nil {
		return err
	}
	if top > 0 && top < len(conns) {
		conns = conns[:top]
	}
	out := cmd.OutOrStdout()
	for _, c := range conns {
		fmt.Fprintf(out, "%s %d\n", seqdb.FormatID(c.ID), c.Count)
	}

	return nil
}
