package provider

import (
	"net/http"

	"paybridge/internal/currency"
)

// Router maps a currency to its provider integration. Adding a provider is a
// new Adapter plus one table entry, not a new branch in request handling.
type Router struct {
	table map[currency.Currency]Adapter
}

// NewRouter builds the dispatch table. The HTTP adapters share the injected
// client so the timeout is configured in one place.
func NewRouter(baseURL string, client *http.Client) *Router {
	return &Router{
		table: map[currency.Currency]Adapter{
			currency.EUR: NewDirectPay(),
			currency.USD: NewBillCreate(baseURL, client),
			currency.RUB: NewInvoiceCreate(baseURL, client),
		},
	}
}

// Route returns the adapter for a parsed currency. The raw string is
// validated against the closed enumeration before lookup, so a miss here
// means an enum member was left out of the table.
func (r *Router) Route(c currency.Currency) (Adapter, error) {
	adapter, ok := r.table[c]
	if !ok {
		return nil, currency.ErrUnsupportedCurrency
	}
	return adapter, nil
}
