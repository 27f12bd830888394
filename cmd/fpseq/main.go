// SPDX-License-Identifier: MIT

// Command fpseq identifies integer sequences: it matches them against the
// reference database through series transforms, fits recurrences, and
// explores how database entries relate to each other.
//
//	fpseq search --db stripped.gz 1,1,2,5,14,42,132,429
//	fpseq fit 1 0 1 2 9 44 265 1854 14833
//	fpseq apply 'binomial|euler' 1,1,1,1,1,1,1,1
//	fpseq info --db stripped.gz
//	fpseq connectivity --db small.gz --top 20
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fpseq:", err)
		stop()
		os.Exit(1)
	}
}
