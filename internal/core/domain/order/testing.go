package order

import (
	"context"
	"time"
)

type TestProvider struct {
	DueOrders         []Order
	DueError          error
	DueCalledWith     [][2]time.Time
	OutstandingOrders []Order
	OutstandingError  error
}

func NewTestProvider() *TestProvider {
	return &TestProvider{}
}

func (p *TestProvider) DueWithin(ctx context.Context, from, until time.Time) ([]Order, error) {
	if p.DueError != nil {
		return nil, p.DueError
	}
	p.DueCalledWith = append(p.DueCalledWith, [2]time.Time{from, until})
	return p.DueOrders, nil
}

func (p *TestProvider) WithOutstandingBalance(ctx context.Context, placedBefore time.Time) ([]Order, error) {
	if p.OutstandingError != nil {
		return nil, p.OutstandingError
	}
	return p.OutstandingOrders, nil
}

var _ Provider = (*TestProvider)(nil)
