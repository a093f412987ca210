package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"paybridge/internal/handler"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	// We only test the HTTP wiring here, not the payment logic itself.
	srv := setupRouter(handler.New(nil))

	t.Run("Health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("UnknownPath", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("PayRejectsGet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
