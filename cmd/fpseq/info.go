// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpseq/field"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the database size and content digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return byField(a.cfg.Field,
				func() error { return runInfo[field.P65521](cmd, a) },
				func() error { return runInfo[field.M31](cmd, a) },
				func() error { return runInfo[field.M61](cmd, a) },
			)
		},
	}
}

func runInfo[F field.Element[F]](cmd *cobra.Command, a *app) error {
	db, err := loadDB[F](a)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "database: %s\n", a.cfg.Database)
	fmt.Fprintf(out, "field:    %s\n", a.cfg.Field)
	fmt.Fprintf(out, "entries:  %d\n", db.Len())
	fmt.Fprintf(out, "blake3:   %s\n", db.Digest())

	return nil
}
