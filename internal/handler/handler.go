package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"paybridge/internal/currency"
	"paybridge/internal/logger"
	"paybridge/internal/money"
	"paybridge/internal/payment"
	"paybridge/internal/provider"

	"go.uber.org/zap"
)

// genericFailure is the only thing a payer sees when a provider call goes
// wrong. Status codes and provider bodies stay in the server logs.
const genericFailure = "payment failed, please try again later"

type Handler struct {
	svc payment.Service
}

func New(svc payment.Service) *Handler {
	return &Handler{svc: svc}
}

// Pay accepts the merchant payment form and dispatches it to the provider
// selected by currency.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSONError(w, "malformed form data", http.StatusBadRequest)
		return
	}

	shopOrderID, err := strconv.ParseInt(r.PostFormValue("shop_order_id"), 10, 64)
	if err != nil {
		writeJSONError(w, "invalid shop_order_id", http.StatusBadRequest)
		return
	}

	req := payment.Request{
		Amount:      r.PostFormValue("amount"),
		Currency:    r.PostFormValue("currency"),
		Description: r.PostFormValue("description"),
		ShopOrderID: shopOrderID,
		ShopID:      r.PostFormValue("shop_id"),
		Secret:      r.PostFormValue("secret"),
	}

	outcome, err := h.svc.Process(r.Context(), req)
	if err != nil {
		h.writeProcessError(w, r, err)
		return
	}

	switch outcome.Kind {
	case provider.KindRedirect:
		http.Redirect(w, r, outcome.URL, http.StatusFound)
	case provider.KindInvoicePayload:
		writeJSON(w, map[string]any{"data": outcome.Invoice})
	case provider.KindRenderedForm:
		writeJSON(w, map[string]any{"data": outcome.Form})
	default:
		logger.FromCtx(r.Context()).Error("unknown outcome kind", zap.Int("kind", int(outcome.Kind)))
		writeJSONError(w, genericFailure, http.StatusInternalServerError)
	}
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) writeProcessError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromCtx(r.Context())

	switch {
	case errors.Is(err, money.ErrInvalidAmount):
		writeJSONError(w, "amount must be a non-negative decimal with at most two fraction digits", http.StatusBadRequest)
	case errors.Is(err, currency.ErrUnsupportedCurrency):
		writeJSONError(w, "currency must be one of USD, EUR, RUB", http.StatusBadRequest)
	default:
		var rejected *provider.RejectedError
		if errors.As(err, &rejected) {
			log.Error("provider rejected payment",
				zap.String("provider", rejected.Provider),
				zap.Int("status", rejected.Status),
			)
		} else {
			log.Error("payment dispatch failed", zap.Error(err))
		}
		writeJSONError(w, genericFailure, http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
