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

// BillCreate is the USD integration. It creates a bill on the provider side
// and redirects the payer to the returned payment URL.
//
// The payer and shop currencies are the same numeric code here; the provider
// still wants both in the body and in the signed string, in its own order.
type BillCreate struct {
	baseURL    string
	httpClient *http.Client
}

func NewBillCreate(baseURL string, client *http.Client) *BillCreate {
	return &BillCreate{baseURL: baseURL, httpClient: client}
}

func (b *BillCreate) Name() string { return "billcreate" }

func (b *BillCreate) Create(ctx context.Context, req Request) (*Outcome, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("provider", b.Name()),
		zap.Int64("shop_order_id", req.ShopOrderID),
	)

	code := req.Currency.NumericString()
	orderID := strconv.FormatInt(req.ShopOrderID, 10)

	signature := sign.Digest(
		[]string{code, req.Amount, code, req.ShopID, orderID},
		req.Secret,
	)

	body := map[string]any{
		"description":    req.Description,
		"payer_currency": code,
		"shop_amount":    req.Amount,
		"shop_currency":  code,
		"shop_id":        req.ShopID,
		"shop_order_id":  orderID,
		"sign":           signature,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal bill request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/bill/create", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Info("sending bill create request")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		log.Error("bill create request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read bill create response", zap.Error(err))
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("provider rejected bill create",
			zap.Int("status", resp.StatusCode),
		)
		return nil, &RejectedError{Provider: b.Name(), Status: resp.StatusCode}
	}

	var res struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &res); err != nil {
		log.Error("failed decoding bill create response", zap.Error(err))
		return nil, err
	}

	log.Info("bill created", zap.Int("status", resp.StatusCode))

	return &Outcome{Kind: KindRedirect, URL: res.Data.URL}, nil
}
