// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"unicode"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fpseq/config"
	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/seqdb"
	"github.com/katalvlaran/fpseq/series"
)

var log = logging.Logger("fpseq")

// app carries the resolved configuration from the root into subcommands.
type app struct {
	cfgPath  string
	database string
	field    string
	logLevel string
	workers  int

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fpseq",
		Short:         "Identify integer sequences over finite fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd.Flags())
		},
	}
	fs := root.PersistentFlags()
	fs.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	fs.StringVar(&a.database, "db", "", "stripped database file, plain or gzip")
	fs.StringVar(&a.field, "field", "", "arithmetic field: p65521, m31 or m61")
	fs.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.IntVar(&a.workers, "workers", 0, "worker goroutines (0: one per CPU)")

	root.AddCommand(
		newSearchCmd(a),
		newFitCmd(a),
		newApplyCmd(a),
		newInfoCmd(a),
		newConnectivityCmd(a),
		newRelateCmd(a),
	)

	return root
}

// resolve loads the configuration and applies the flags the user set.
func (a *app) resolve(fs *pflag.FlagSet) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if fs.Changed("db") {
		cfg.Database = a.database
	}
	if fs.Changed("field") {
		cfg.Field = a.field
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if fs.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	cfg.Field = strings.ToLower(cfg.Field)
	if err = logging.SetLogLevel("*", cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.cfg = cfg

	return nil
}

// byField runs the instantiation matching the configured field.
func byField(name string, p65521, m31, m61 func() error) error {
	switch name {
	case config.FieldM31:
		return m31()
	case config.FieldM61:
		return m61()
	default:
		return p65521()
	}
}

// parseTerms accepts terms separated by commas, blanks, or both, spread
// over any number of arguments.
func parseTerms[F field.Element[F]](args []string) (series.Fixed[F], error) {
	terms := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(terms) == 0 {
		return series.Fixed[F]{}, fmt.Errorf("%w: no terms", series.ErrMalformed)
	}
	if len(terms) > series.N {
		log.Debugf("using the first %d of %d terms", series.N, len(terms))
	}

	return series.Parse[F](strings.Join(terms, ","))
}

// loadDB opens the configured database; Find shares the search min_match.
func loadDB[F field.Element[F]](a *app, opts ...seqdb.Option) (*seqdb.DB[F], error) {
	opts = append([]seqdb.Option{seqdb.WithMinMatch(a.cfg.MinMatch)}, opts...)

	return seqdb.Load[F](a.cfg.Database, opts...)
}
