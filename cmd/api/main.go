package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"account_admin_backend/internal/accounts"
	apphttp "account_admin_backend/internal/http"
	"account_admin_backend/internal/http/router"
	"account_admin_backend/platform/authprovider"
	"account_admin_backend/platform/authprovider/firebase"
	"account_admin_backend/platform/authprovider/memory"
	"account_admin_backend/platform/authprovider/zitadel"
	"account_admin_backend/platform/config"
	"account_admin_backend/platform/logger"
	"account_admin_backend/platform/metrics"
	"account_admin_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "provider", cfg.AuthProvider)

	if !isDevelopment(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// The identity provider client is created once and shared by every call.
	var provider authprovider.Provider
	if err := withRetry(ctx, log, "identity provider initialization", 5, 2*time.Second, func() error {
		p, err := newAuthProvider(ctx, cfg)
		if err != nil {
			return err
		}
		provider = p
		return nil
	}); err != nil {
		log.Error("failed to initialize identity provider", "error", err, "provider", cfg.AuthProvider)
		panic("failed to initialize identity provider: " + err.Error())
	}
	log.Info("identity provider initialized", "provider", provider.Name())

	appMetrics := metrics.New()
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	accountsModule := accounts.NewModule(provider, val, appMetrics, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Provider: accountsModule.Service(),
		Modules: []apphttp.Module{
			accountsModule,
		},
	}

	servers := []*http.Server{{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}}

	if cfg.IsMetricsEnabled() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", appMetrics.Handler())
		servers = append(servers, &http.Server{
			Addr:              cfg.GetMetricsAddr(),
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			log.Info("server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return shutdownErr
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newAuthProvider(ctx context.Context, cfg *config.Config) (authprovider.Provider, error) {
	switch cfg.GetAuthProvider() {
	case config.ProviderFirebase:
		return firebase.New(ctx, cfg)
	case config.ProviderZitadel:
		return zitadel.New(ctx, cfg)
	case config.ProviderMemory:
		return memory.New(cfg.GetMemorySeedUIDs()...), nil
	default:
		return nil, fmt.Errorf("unsupported identity provider %q", cfg.GetAuthProvider())
	}
}

func isDevelopment(env string) bool {
	return strings.EqualFold(env, "development")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
