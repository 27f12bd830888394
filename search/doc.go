// SPDX-License-Identifier: MIT

// Package search matches a query sequence against the reference database.
//
// 🔍 What it does
//
// The query is pushed through every configured unary operator of package
// series ("id", "binomial", "euler", "recip", ...). Each database entry is
// compared against every transform; a hit requires the transform and the
// entry to agree on at least MinMatch leading terms. The score of a hit is
// the number of agreeing terms minus the operator cost, and each entry keeps
// only its best-scoring operator.
//
// Alongside the database scan the engine fits recurrences (package
// interpolate) to the query and, optionally, to each transform.
//
// ⚙️ Usage
//
//	eng, err := search.New(db, search.WithTopK(5), search.WithOps("id", "binomial"))
//	if err != nil { ... }
//	res, err := eng.Search(ctx, query)
//	for _, m := range res.Matches {
//		fmt.Println(seqdb.FormatID(m.ID), m.Op, m.Score)
//	}
//
// ⚡ Concurrency
//
// Entries are scanned in chunks on an errgroup bounded by Workers. Hits go
// into a top-K list guarded by a mutex held only to insert and truncate.
// The list order (score, then A-number, then index) is total, so the result
// does not depend on which chunk finishes first.
package search
