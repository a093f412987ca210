package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"paybridge/internal/logger"
	"paybridge/internal/sign"

	"go.uber.org/zap"
)

// payway is fixed by the provider contract: it is part of both the body and
// the signed string, but it is a constant, not user input.
const invoicePayway = "advcash_rub"

// InvoiceCreate is the RUB integration. It creates an invoice on the provider
// side and returns the invoice payload to the caller.
type InvoiceCreate struct {
	baseURL    string
	httpClient *http.Client
}

func NewInvoiceCreate(baseURL string, client *http.Client) *InvoiceCreate {
	return &InvoiceCreate{baseURL: baseURL, httpClient: client}
}

func (i *InvoiceCreate) Name() string { return "invoicecreate" }

func (i *InvoiceCreate) Create(ctx context.Context, req Request) (*Outcome, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("provider", i.Name()),
		zap.Int64("shop_order_id", req.ShopOrderID),
	)

	code := req.Currency.NumericString()
	orderID := strconv.FormatInt(req.ShopOrderID, 10)

	signature := sign.Digest(
		[]string{req.Amount, code, invoicePayway, req.ShopID, orderID},
		req.Secret,
	)

	body := map[string]any{
		"description":   req.Description,
		"currency":      code,
		"amount":        req.Amount,
		"shop_id":       req.ShopID,
		"shop_order_id": orderID,
		"payway":        invoicePayway,
		"sign":          signature,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal invoice request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/invoice/create", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Info("sending invoice create request")

	resp, err := i.httpClient.Do(httpReq)
	if err != nil {
		log.Error("invoice create request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read invoice create response", zap.Error(err))
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("provider rejected invoice create",
			zap.Int("status", resp.StatusCode),
		)
		return nil, &RejectedError{Provider: i.Name(), Status: resp.StatusCode}
	}

	var res struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(respBody, &res); err != nil {
		log.Error("failed decoding invoice create response", zap.Error(err))
		return nil, err
	}

	log.Info("invoice created", zap.Int("status", resp.StatusCode))

	return &Outcome{Kind: KindInvoicePayload, Invoice: res.Data}, nil
}
