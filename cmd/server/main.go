package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/chandra447/item-tracker/internal/aggregator"
	"github.com/chandra447/item-tracker/internal/backend"
	"github.com/chandra447/item-tracker/internal/config"
	"github.com/chandra447/item-tracker/internal/handler"
	"github.com/chandra447/item-tracker/internal/metrics"
	mw "github.com/chandra447/item-tracker/internal/middleware"
	"github.com/chandra447/item-tracker/internal/session"
	"github.com/chandra447/item-tracker/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	// Session fallback store
	local, err := session.NewLocalStore(cfg.SessionDBPath)
	if err != nil {
		slog.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer local.Close()
	slog.Info("Session store initialized", "database", cfg.SessionDBPath)

	// One backend client for the whole process, injected everywhere.
	client := backend.New(cfg.BackendURL)
	slog.Info("Collection backend configured", "url", cfg.BackendURL)

	sessions := session.NewSynchronizer(
		session.Codec{Secure: cfg.CookieSecure},
		local,
		session.NewMemStore(),
	)
	agg := aggregator.New(client)
	h := handler.New(client, agg, sessions)

	r := chi.NewRouter()
	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(mw.Gate)
	r.Use(mw.Session(sessions))

	h.Register(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// h2c so HTTP/2 works without TLS behind a local proxy.
	h2cHandler := h2c.NewHandler(r, &http2.Server{})

	addr := ":" + cfg.ServerPort
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
