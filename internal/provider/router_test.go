package provider

import (
	"net/http"
	"testing"

	"paybridge/internal/currency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Route(t *testing.T) {
	router := NewRouter("https://provider.test", &http.Client{})

	tests := []struct {
		cur  currency.Currency
		name string
	}{
		{currency.EUR, "directpay"},
		{currency.USD, "billcreate"},
		{currency.RUB, "invoicecreate"},
	}

	for _, tt := range tests {
		t.Run(string(tt.cur), func(t *testing.T) {
			adapter, err := router.Route(tt.cur)
			require.NoError(t, err)
			assert.Equal(t, tt.name, adapter.Name())
		})
	}

	t.Run("UnregisteredCurrency", func(t *testing.T) {
		_, err := router.Route(currency.Currency("GBP"))
		assert.ErrorIs(t, err, currency.ErrUnsupportedCurrency)
	})
}
