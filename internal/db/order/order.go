package order

import (
	"context"
	"time"

	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/order"
	"dentalab/internal/db"

	"github.com/jackc/pgx/v4"
)

// Terminal order states excluded from the due-date scan. The pedidos
// table is owned by the back-office CRUD layer; this provider only reads.
var terminalStatuses = []string{"ENTREGADO", "PAGADO", "CANCELADO"}

type PgxOrderProvider struct {
	db db.Querier
}

func NewPgxOrderProvider(q db.Querier) *PgxOrderProvider {
	if q == nil {
		panic(e.NewNilArgumentError("q"))
	}
	return &PgxOrderProvider{db: q}
}

func (p *PgxOrderProvider) DueWithin(
	ctx context.Context,
	from, until time.Time,
) (orders []order.Order, err error) {
	rows, err := p.db.Query(
		ctx,
		`SELECT p.id, p.numero, p.cliente_id, c.nombre, p.fecha_entrega,
			p.saldo_pendiente, p.fecha_pedido, p.estado
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		WHERE p.estado != ALL($1)
			AND p.fecha_entrega >= $2
			AND p.fecha_entrega <= $3
		ORDER BY p.fecha_entrega ASC`,
		terminalStatuses,
		from,
		until,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return decodeOrders(rows)
}

func (p *PgxOrderProvider) WithOutstandingBalance(
	ctx context.Context,
	placedBefore time.Time,
) (orders []order.Order, err error) {
	rows, err := p.db.Query(
		ctx,
		`SELECT p.id, p.numero, p.cliente_id, c.nombre, p.fecha_entrega,
			p.saldo_pendiente, p.fecha_pedido, p.estado
		FROM pedidos p
		JOIN clientes c ON c.id = p.cliente_id
		WHERE p.saldo_pendiente > 0 AND p.fecha_pedido < $1
		ORDER BY p.fecha_pedido ASC`,
		placedBefore,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return decodeOrders(rows)
}

func decodeOrders(rows pgx.Rows) (orders []order.Order, err error) {
	for rows.Next() {
		var ord order.Order
		err = rows.Scan(
			&ord.ID,
			&ord.Number,
			&ord.ClientID,
			&ord.ClientName,
			&ord.DueDate,
			&ord.Balance,
			&ord.PlacedAt,
			&ord.Status,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

var _ order.Provider = (*PgxOrderProvider)(nil)
