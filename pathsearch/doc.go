// SPDX-License-Identifier: MIT
//
// Package pathsearch is the public orchestration facade spec.md §6 names
// as the Core API: PathSearch(request) -> SearchOutcome. It wires
// pathgraph.BuildGraph, search.Engine, and pathresult.Sink/Collector
// together in the single-orchestrator-function style the teacher's
// builder.BuildGraph uses ("one orchestrator ... creates g, resolves
// cfg, runs constructors in order").
//
// pathsearch is the only package in this module that imports every
// other package; money, orderbook, pathgraph, search, and pathresult
// each depend only on their own upstream neighbours.
package pathsearch
