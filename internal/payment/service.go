package payment

import (
	"context"
	"time"

	"paybridge/internal/currency"
	"paybridge/internal/logger"
	"paybridge/internal/money"
	"paybridge/internal/order"
	"paybridge/internal/provider"

	"go.uber.org/zap"
)

// Request is the merchant's inbound payment request as submitted through the
// form. Secret and ShopID are per-request credentials: they are forwarded to
// the provider adapter and nowhere else.
type Request struct {
	Amount      string
	Currency    string
	Description string
	ShopOrderID int64
	ShopID      string
	Secret      string
}

// Router resolves a currency to its provider integration.
type Router interface {
	Route(c currency.Currency) (provider.Adapter, error)
}

// Service is the provider dispatch core.
type Service interface {
	Process(ctx context.Context, req Request) (*provider.Outcome, error)
}

type service struct {
	router   Router
	recorder order.Recorder
}

func NewService(router Router, recorder order.Recorder) Service {
	return &service{router: router, recorder: recorder}
}

// Process runs one payment end-to-end: validate, route, sign and submit,
// record, respond. The order is persisted only after the adapter reports
// success, for all three integrations alike, so a rejected provider call
// never leaves an order behind.
func (s *service) Process(ctx context.Context, req Request) (*provider.Outcome, error) {
	cur, err := currency.Parse(req.Currency)
	if err != nil {
		return nil, err
	}

	cents, err := money.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	adapter, err := s.router.Route(cur)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("method", adapter.Name()),
		zap.Int64("shop_order_id", req.ShopOrderID),
	)
	log.Info("payment method selected")

	outcome, err := adapter.Create(ctx, provider.Request{
		Amount:      req.Amount,
		Currency:    cur,
		Description: req.Description,
		ShopOrderID: req.ShopOrderID,
		ShopID:      req.ShopID,
		Secret:      req.Secret,
	})
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		PaymentTime: time.Now(),
		Amount:      cents,
		Currency:    cur.NumericCode(),
		Description: req.Description,
		ShopOrderID: req.ShopOrderID,
	}

	// Bookkeeping must not block the paying customer: a failed save is
	// logged and deliberately discarded. The operational side treats a
	// missing order row as a reconciliation signal.
	if err := s.recorder.Save(ctx, o); err != nil {
		log.Error("order was not saved", zap.Error(err))
	} else {
		log.Info("order saved", zap.Int64("order_id", o.ID))
	}

	return outcome, nil
}
