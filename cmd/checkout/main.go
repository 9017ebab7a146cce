package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/handlers"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/api/middleware"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/config"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/health"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/metrics"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/promotion"
	repository "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/repositories"
	service "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/services"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/storage"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Session storage setup. Local runs can skip Redis entirely.
	var sessionStore storage.Store

	if cfg.Env == "local" {
		sessionStore = storage.NewMemoryStore()

		slog.Warn("Using in-memory session storage; carts will not survive a restart")
	} else {
		redisClient, err := storage.NewRedisClient(cfg)
		if err != nil {
			slog.Error("Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		sessionStore = storage.NewRedisStore(redisClient, &cfg.Session)
	}

	defer func() {
		if err := sessionStore.Close(); err != nil {
			slog.Error("Error closing session storage", slog.String("error", err.Error()))
		}
	}()

	// Promotion catalog: fetch once at startup, refresh in the background.
	catalog := promotion.NewCatalog(repos.Promotion)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalog.Refresh(startupCtx); err != nil {
		slog.Warn("Initial promotion catalog fetch failed", slog.String("error", err.Error()))
	}

	cancelStartup()

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()

	go func() {
		ticker := time.NewTicker(cfg.Catalog.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if err := catalog.Refresh(refreshCtx); err != nil {
					slog.Warn("Promotion catalog refresh failed", slog.String("error", err.Error()))
				}
			}
		}
	}()

	checkoutService := service.NewCheckoutService(sessionStore, repos.Promotion, catalog)
	cartHandler := handlers.NewCartHandler(checkoutService)
	wishlistHandler := handlers.NewWishlistHandler(checkoutService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	promotionHandler := handlers.NewPromotionHandler(checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	routerMux.HandleFunc("POST /api/v1/wishlist/items", wishlistHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/wishlist/items/{id}", wishlistHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/wishlist", wishlistHandler.ClearWishlist())
	routerMux.HandleFunc("GET /api/v1/promotions", promotionHandler.ListActive())
	routerMux.HandleFunc("POST /api/v1/promotions/refresh", promotionHandler.Refresh())
	routerMux.HandleFunc("POST /api/v1/checkout/promotion", checkoutHandler.ApplyPromotion())
	routerMux.HandleFunc("POST /api/v1/checkout/pricing", checkoutHandler.Pricing())
	routerMux.HandleFunc("POST /api/v1/checkout/redeem", checkoutHandler.Redeem())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	stopRefresh()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
