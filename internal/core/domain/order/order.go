package order

import (
	"time"
)

type ID int64

// Order is the read-only projection of a lab order (pedido) this subsystem
// consumes. The orders table is owned by the back-office CRUD layer; only
// the fields the reminder generator needs are exposed here.
type Order struct {
	ID         ID
	Number     string
	ClientID   int64
	ClientName string
	DueDate    time.Time
	Balance    float64
	PlacedAt   time.Time
	Status     string
}

// DaysUntilDue counts whole days from now until the order's due date,
// rounding partial days up so an order due tomorrow morning counts as one.
func (o Order) DaysUntilDue(now time.Time) int {
	d := o.DueDate.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// AgeDays counts whole days since the order was placed.
func (o Order) AgeDays(now time.Time) int {
	return int(now.Sub(o.PlacedAt) / (24 * time.Hour))
}
