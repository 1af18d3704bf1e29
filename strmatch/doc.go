// SPDX-License-Identifier: MIT

// Package strmatch searches a text for a pattern and reports every character
// comparison, table update and match as a step.Step.
//
// All algorithms share one contract:
//
//   - Run(st, algo, opts...) validates synchronously and returns a
//     single-use iter.Seq[step.Step] ending in Done (or a Fault).
//   - Zero or more MatchFound(index, length) steps, in increasing end
//     position; NoMatch appears right before Done only if nothing matched.
//   - A pattern longer than the text yields exactly NoMatch, Done.
//   - CompareChar(i, j) pits text[i] against pattern position j.
//
// Algorithms:
//
//	KMP          O(n + m)  LPS table (one Table step per entry), then a scan
//	                       that reports every occurrence, overlaps included.
//	RabinKarp    O(n·m) worst, O(n + m) expected; base 256 mod 101 rolling
//	                       hash, Window(i, hash) per window, CompareChar on
//	                       hash hits.
//	Z            O(n + m)  Z array over pattern, sentinel, text; Table(i, z)
//	                       for each text position.
//	AhoCorasick  O(n + m + matches)  automaton over the pattern and any
//	                       WithDictionary words; CompareChar(i, depth) per
//	                       text character, depth being the matched suffix length.
//	LCS          O(n·m)    longest common substring by DP; Table(i, best) on
//	                       every improvement, one MatchFound for the first
//	                       longest substring.
package strmatch
