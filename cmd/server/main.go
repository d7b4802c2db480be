package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/halland-longevity/backend/internal/handler"
	"github.com/halland-longevity/backend/internal/logging"
	"github.com/halland-longevity/backend/internal/repository"
	"github.com/halland-longevity/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	rateLimit := 20
	if s := os.Getenv("RATE_LIMIT_PER_MINUTE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			rateLimit = n
		}
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, repository.Config{
		Driver:      os.Getenv("STORAGE_DRIVER"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
	})
	if err != nil {
		logging.Fatal("failed to open storage", "error", err)
	}

	contactService := service.NewContactService(store)
	newsletterService := service.NewNewsletterService(store)

	contactHandler := handler.NewContactHandler(contactService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	healthHandler := handler.NewHealthHandler(store)
	adminHandler := handler.NewAdminHandler(contactService, newsletterService)

	limiter := handler.NewRateLimiter(rateLimit)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	// The form endpoints do their own method handling (405 with Allow,
	// OPTIONS preflight), so they register without a method pattern.
	mux.Handle("/api/contact", limiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("/api/newsletter", limiter.Middleware(http.HandlerFunc(newsletterHandler.Subscribe)))

	// Admin listings exist only when a token is configured.
	if adminToken := os.Getenv("ADMIN_TOKEN"); adminToken != "" {
		requireAdmin := handler.RequireAdminToken(adminToken)
		mux.Handle("GET /api/admin/contacts", requireAdmin(http.HandlerFunc(adminHandler.ListContacts)))
		mux.Handle("GET /api/admin/subscriptions", requireAdmin(http.HandlerFunc(adminHandler.ListSubscriptions)))
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(handler.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "driver", storageDriverName())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func storageDriverName() string {
	if d := os.Getenv("STORAGE_DRIVER"); d != "" {
		return d
	}
	return repository.DriverMemory
}
