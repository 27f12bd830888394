// SPDX-License-Identifier: MIT

// Package seqdb loads the reference sequence database and answers exact
// lookups against it.
//
// 📦 What is inside
//
//   - Read / Load: the "stripped" text format (one sequence per line, an
//     A-number then comma-separated integers), plain or gzip-compressed.
//     Every term is reduced into the chosen field; at most series.N terms
//     are kept per entry.
//   - DB: positional access, A-number lookup, prefix lookup via BLAKE3
//     fingerprints of every entry prefix, and the BLAKE3 digest of the
//     bytes that were loaded.
//   - Connectivity: counts, for every entry, how often it takes part in a
//     unary or pairwise relation whose result is also in the database.
//   - Relations: the same exploration kept as a graph; Reach walks it
//     breadth-first and Walk.PathTo names the shortest chain of operators
//     linking two entries.
//
// ⚙️ Usage
//
//	db, err := seqdb.Load[field.P65521]("stripped.gz", seqdb.WithMinTerms(8))
//	if err != nil { ... }
//	fib, _ := series.Parse[field.P65521]("1,1,2,3,5,8,13,21")
//	for _, i := range db.Find(fib) {
//		fmt.Println(seqdb.FormatID(db.At(i).ID))
//	}
//
// Find is a prefix match: a 15-term derivative finds the 16-term entry it
// begins, and a 16-term candidate finds a 10-term entry it extends, as long
// as the shared prefix holds WithMinMatch terms (default 6). Ranking hits
// by how much of the query they explain is the job of package search.
package seqdb
