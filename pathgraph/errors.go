package pathgraph

import "errors"

var (
	// ErrInvalidInput flags malformed SpendConstraints (a currency
	// mismatch, Min > Max, or Desired outside [Min, Max]) and, from
	// EvalFillAtSpend, a fill that falls outside the order's bounds.
	ErrInvalidInput = errors.New("pathgraph: invalid input")

	// ErrUnknownCurrency is returned when SpendConstraints.ProjectRange is
	// asked to project through an edge whose currencies do not match the
	// constraint's current currency, or when EvalFillAtSpend is given a
	// spend in a currency other than the edge's From currency.
	ErrUnknownCurrency = errors.New("pathgraph: currency mismatch during projection")
)
