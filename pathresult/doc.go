// SPDX-License-Identifier: MIT
//
// Package pathresult turns an accepted search.CandidatePath into a fully
// costed PathResult (the candidate materialiser, spec.md §4.9) and
// collects up to K such results in ranked order (the result ordering and
// top-K collector, spec.md §4.10). Neither step ever talks to the heap,
// the dominance registry, or the guards directly — search.CandidateSink
// is the only seam between this package and package search.
package pathresult
