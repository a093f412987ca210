package order

import (
	"context"
	"database/sql"
)

// Recorder persists orders. The dispatch core treats a Save failure as a
// reconciliation signal, not a payment failure, so implementations only need
// to report the error; they must not retry into the customer's request.
type Recorder interface {
	Save(ctx context.Context, o *Order) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Recorder {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, o *Order) error {
	query := `
		INSERT INTO orders (payment_time, amount, currency, description, shop_order_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		o.PaymentTime,
		o.Amount,
		o.Currency,
		o.Description,
		o.ShopOrderID,
	).Scan(&o.ID)
}
