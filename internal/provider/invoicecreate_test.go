package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"paybridge/internal/currency"
	"paybridge/internal/sign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rubRequest() Request {
	return Request{
		Amount:      "500",
		Currency:    currency.RUB,
		Description: "order 7",
		ShopOrderID: 7,
		ShopID:      "shop-ru",
		Secret:      "topsecret",
	}
}

func TestInvoiceCreate_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := &http.Client{Transport: MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://provider.test/invoice/create", req.URL.String())

			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "643", body["currency"])
			assert.Equal(t, "500", body["amount"])
			assert.Equal(t, "advcash_rub", body["payway"])
			assert.Equal(t,
				sign.Digest([]string{"500", "643", "advcash_rub", "shop-ru", "7"}, "topsecret"),
				body["sign"],
			)

			return &http.Response{
				StatusCode: http.StatusOK,
				Body: io.NopCloser(bytes.NewBufferString(
					`{"data":{"id":"inv-1","amount":"500","url":"https://inv"}}`,
				)),
				Header: make(http.Header),
			}
		})}

		adapter := NewInvoiceCreate("https://provider.test", client)
		outcome, err := adapter.Create(context.Background(), rubRequest())
		require.NoError(t, err)
		assert.Equal(t, KindInvoicePayload, outcome.Kind)
		assert.Equal(t, "inv-1", outcome.Invoice["id"])
		assert.Equal(t, "https://inv", outcome.Invoice["url"])
	})

	t.Run("ProviderRejected", func(t *testing.T) {
		client := &http.Client{Transport: MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusBadGateway,
				Body:       io.NopCloser(bytes.NewBufferString(``)),
				Header:     make(http.Header),
			}
		})}

		adapter := NewInvoiceCreate("https://provider.test", client)
		_, err := adapter.Create(context.Background(), rubRequest())

		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, http.StatusBadGateway, rejected.Status)
	})
}
