package order

import "time"

// Order is the bookkeeping record written once per accepted payment. It is
// insert-only: nothing in the gateway updates or deletes it.
//
// Amount is integer minor units and never negative; the amount is validated
// before an Order is ever built. Shop credentials are deliberately absent.
type Order struct {
	ID          int64
	PaymentTime time.Time
	Amount      int64
	Currency    int
	Description string
	ShopOrderID int64
}
