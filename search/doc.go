// SPDX-License-Identifier: MIT
//
// Package search implements the best-first graph search over a
// pathgraph.Graph: search state, a signature-keyed dominance registry,
// a four-key lexicographic priority queue, guard rails, and the engine
// loop that drives them together.
//
// The engine never materializes amounts or builds PathResult values —
// that is pathresult's job, invoked through the CandidateSink interface
// this package defines. search has no import of pathresult; pathresult
// imports search. This mirrors the teacher's dijkstra package, which
// knows nothing about how its caller renders a shortest path, and
// reuses dijkstra's container/heap-based nodePQ shape generalized to a
// four-key priority instead of a single scalar weight.
//
// Cost is additive across hops and carries fee impact: each edge
// contributes (spendMax/receiveMax - 1), the deviation of the edge's
// fee-inclusive spend-to-receive ratio from parity. A favorable edge
// (net gain, ratio < 1) contributes a negative amount; DESIGN.md records
// this as the deliberate resolution of the cost/monotonicity open
// question the originating spec leaves unpinned.
package search
