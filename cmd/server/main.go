package main

import (
	"log"
	"net/http"

	"paybridge/internal/config"
	"paybridge/internal/db"
	"paybridge/internal/handler"
	"paybridge/internal/logger"
	"paybridge/internal/middleware"
	"paybridge/internal/order"
	"paybridge/internal/payment"
	"paybridge/internal/provider"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// One HTTP client for all provider adapters so the outbound timeout is
	// configured in a single place.
	client := &http.Client{Timeout: cfg.ProviderTimeout}

	router := provider.NewRouter(cfg.ProviderBaseURL, client)
	recorder := order.NewRepository(database)
	svc := payment.NewService(router, recorder)
	h := handler.New(svc)

	srv := setupRouter(h)

	logger.L().Info("payment gateway listening",
		zap.String("port", cfg.AppPort),
		zap.String("provider_base_url", cfg.ProviderBaseURL),
	)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, srv))
}

func setupRouter(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/pay", h.Pay)
	mux.HandleFunc("/healthz", h.Health)

	return logger.RequestIDMiddleware(
		middleware.RateLimitMiddleware(
			middleware.LoggingMiddleware(mux),
		),
	)
}
