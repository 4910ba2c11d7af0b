package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/config"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/auth"
	cachemem "github.com/diegoabmdev/mi-ecommerce-sub000/internal/cache/memory"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/catalog"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/checkout"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/kvstore"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/payment"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/store"
	rest "github.com/diegoabmdev/mi-ecommerce-sub000/internal/transport/http"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/usecase"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/logger"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/metrics"
	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/telemetry"
)

// App is the assembled service and its outer surfaces.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	gracefulTimeout time.Duration
}

// Cleanup releases resources acquired during Bootstrap.
type Cleanup func()

// applyGinMode sets the gin mode from the config string; an unknown
// value falls back to debug with a warning.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap assembles the dependency graph and returns the app plus a
// cleanup function.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Tracing is opt-in; disabled it stays a no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Persistence for the client collections.
	kv, err := kvstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Catalog read path: REST client behind the TTL cache.
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	productCache := cachemem.NewTimedCache(cfg.Cache.TTL)
	loaders := catalog.NewLoaders(catalogClient, productCache, cfg.Catalog.ProductLimit)
	storefront := usecase.NewStorefront(loaders, logg.Named("catalog"))

	// Collections hydrate from disk before serving.
	storeLog := logg.Named("store")
	cart := store.NewCart(kv, storeLog, cfg.Payment.CLPRate)
	cart.Hydrate(ctx)
	wishlist := store.NewWishlist(kv, storeLog)
	wishlist.Hydrate(ctx)
	addresses := store.NewAddressBook(kv, storeLog)
	addresses.Hydrate(ctx)
	orders := store.NewOrderLog(kv, storeLog)
	orders.Hydrate(ctx)

	form := checkout.NewForm()
	paymentClient := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.Token, cfg.Payment.CLPRate, cfg.Payment.Timeout)
	checkoutSvc := usecase.NewCheckout(form, cart, orders, paymentClient, logg.Named("checkout"))

	authClient := auth.NewClient(cfg.Auth.BaseURL, cfg.Auth.Timeout)
	tokens := auth.NewPersistentTokenStore(kv)
	authSvc := usecase.NewAuth(authClient, tokens, form, logg.Named("auth"))

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(rest.HandlerDeps{
		Catalog:   storefront,
		Cart:      cart,
		Wishlist:  wishlist,
		Addresses: addresses,
		Orders:    orders,
		Checkout:  checkoutSvc,
		Auth:      authSvc,
		CLPRate:   cfg.Payment.CLPRate,
		Log:       logg,
	})
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Release in reverse order of acquisition.
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run starts the HTTP server, waits for context cancellation or a
// server error, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
