package provider

import (
	"context"
	"strconv"

	"paybridge/internal/logger"
	"paybridge/internal/sign"

	"go.uber.org/zap"
)

// DirectPay is the EUR integration. It makes no network call: the gateway
// signs the payment fields and hands them back for client-side submission to
// the provider's hosted form.
type DirectPay struct{}

func NewDirectPay() *DirectPay {
	return &DirectPay{}
}

func (p *DirectPay) Name() string { return "directpay" }

func (p *DirectPay) Create(ctx context.Context, req Request) (*Outcome, error) {
	code := req.Currency.NumericString()
	orderID := strconv.FormatInt(req.ShopOrderID, 10)

	signature := sign.Digest([]string{req.Amount, code, req.ShopID, orderID}, req.Secret)

	logger.FromCtx(ctx).Info("direct pay form signed",
		zap.Int64("shop_order_id", req.ShopOrderID),
		zap.String("currency", code),
	)

	return &Outcome{
		Kind: KindRenderedForm,
		Form: map[string]string{
			"amount":        req.Amount,
			"currency":      code,
			"shop_id":       req.ShopID,
			"shop_order_id": orderID,
			"sign":          signature,
		},
	}, nil
}
