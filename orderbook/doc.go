// SPDX-License-Identifier: MIT
//
// Package orderbook models a single directed offer to convert one asset
// into another: an Order. Orders are the raw material the graph builder
// (package pathgraph) turns into edges; this package has no knowledge of
// graphs, search, or paths.
//
// Types:
//
//	AssetPair   — a (base, quote) currency pair; a "transfer" pair when
//	              base == quote.
//	OrderBounds — a [min, max] fill-amount interval in the base currency.
//	FeePolicy   — a capability: given a side and fill amounts, computes a
//	              FeeBreakdown; exposes a deterministic Fingerprint.
//	Order       — side + AssetPair + OrderBounds + ExchangeRate + optional
//	              FeePolicy.
//
// Side semantics (spec.md §3): BUY means the taker spends the pair's base
// currency and receives quote; SELL is the opposite.
package orderbook
