// SPDX-License-Identifier: MIT
//
// Package money provides arbitrary-precision, currency-tagged decimal
// arithmetic for the order-path search engine.
//
// Two types anchor the package:
//
//	Decimal — an arbitrary-precision signed number with an explicit,
//	          caller-controlled scale (0..50 fractional digits). Every
//	          producing operation (rescale, multiply-then-round,
//	          divide-then-round) rounds HALF_UP at the target scale.
//	Money   — a Decimal tagged with an uppercase currency symbol
//	          ([A-Z]{3,12}). Add/Sub/Compare require matching currencies;
//	          a scale mismatch is resolved by rescaling the lower-scale
//	          operand HALF_UP to the higher scale before the operation.
//
// No floating-point type appears anywhere in this package's public API or
// internals: the underlying representation is github.com/shopspring/decimal,
// an arbitrary-precision base-10 decimal backed by math/big. This mirrors
// the precision discipline the rest of the engine depends on (see
// search.PathCost, which normalises to scale 18).
//
// Determinism: every method here is a pure function of its receiver and
// arguments; there is no global or process-wide state, so the same inputs
// always produce the same Decimal/Money value, byte-for-byte in String().
package money
