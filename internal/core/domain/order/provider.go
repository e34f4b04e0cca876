package order

import (
	"context"
	"time"
)

// Provider is the external, read-only order data source.
type Provider interface {
	// DueWithin returns orders in a non-terminal status whose due date
	// falls within [from, until], both inclusive.
	DueWithin(ctx context.Context, from, until time.Time) ([]Order, error)
	// WithOutstandingBalance returns orders with a positive pending
	// balance placed before the given moment.
	WithOutstandingBalance(ctx context.Context, placedBefore time.Time) ([]Order, error)
}
