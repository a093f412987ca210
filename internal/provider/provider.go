package provider

import (
	"context"

	"paybridge/internal/currency"
)

// Request carries everything an adapter needs to build and sign a provider
// call. Amount keeps the merchant's original decimal string because the
// signing string must match the request body bit-for-bit.
//
// ShopID and Secret are per-request merchant credentials. They key the
// signature only and must never be persisted or logged.
type Request struct {
	Amount      string
	Currency    currency.Currency
	Description string
	ShopOrderID int64
	ShopID      string
	Secret      string
}

type OutcomeKind int

const (
	// KindRedirect sends the payer to a provider-hosted payment page.
	KindRedirect OutcomeKind = iota
	// KindInvoicePayload returns the provider's invoice object to the caller.
	KindInvoicePayload
	// KindRenderedForm returns signed fields for client-side submission.
	KindRenderedForm
)

// Outcome is the uniform result of a provider call. Exactly one of URL,
// Invoice or Form is set, according to Kind.
type Outcome struct {
	Kind    OutcomeKind
	URL     string
	Invoice map[string]any
	Form    map[string]string
}

// Adapter is a single provider integration. Each adapter owns its endpoint,
// its canonical signing field order and its payload shape; what goes into the
// JSON body and what goes into the signed string are allowed to diverge.
type Adapter interface {
	Name() string
	Create(ctx context.Context, req Request) (*Outcome, error)
}
