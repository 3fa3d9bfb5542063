package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/api/server"
	"github.com/finsight/revenue-dashboard/internal/api/shared/executor"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/logger"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/atlassian"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/profitwell"
	"github.com/finsight/revenue-dashboard/internal/ratelimit"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting revenue dashboard API")

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Initialize local rate limiter shared by all vendor clients
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.Fatal("Failed to initialize rate limiter", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	proxyTargets := make(map[string]executor.ProxyTarget)

	// Construct vendor clients. A vendor with missing credentials is skipped,
	// not fatal; the executor degrades its routes.
	var profitwellClient profitwell.Client
	if pwTransport, err := profitwell.NewDirectTransport(httpClient, cfg.Vendors.Profitwell); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct subscription-analytics transport", zap.Error(err))
		}
		logger.Warn("Subscription-analytics source not configured, its routes will degrade")
	} else {
		profitwellClient = profitwell.NewClient(pwTransport, rateLimitProxy, jsonAdapter, clock)
		proxyTargets[profitwell.PROVIDER_NAME] = executor.ProxyTarget{
			Strategy:        pwTransport,
			AllowedPrefixes: []string{"/metrics/", "/customers/"},
		}
	}

	var atlassianClient atlassian.Client
	if atlTransport, err := atlassian.NewDirectTransport(httpClient, cfg.Vendors.Atlassian); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct marketplace-billing transport", zap.Error(err))
		}
		logger.Warn("Marketplace-billing source not configured, its routes will degrade")
	} else {
		atlassianClient = atlassian.NewClient(atlTransport, rateLimitProxy, jsonAdapter, clock, cfg.Vendors.Atlassian.VendorID)
		proxyTargets[atlassian.PROVIDER_NAME] = executor.ProxyTarget{
			Strategy:        atlTransport,
			AllowedPrefixes: []string{fmt.Sprintf("/%s/reporting/", cfg.Vendors.Atlassian.VendorID)},
		}
	}

	var mercuryClient mercury.Client
	if mcTransport, err := mercury.NewDirectTransport(httpClient, cfg.Vendors.Mercury); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct banking transport", zap.Error(err))
		}
		logger.Warn("Banking source not configured, its routes will degrade")
	} else {
		mercuryClient = mercury.NewClient(mcTransport, rateLimitProxy, jsonAdapter, clock)
		proxyTargets[mercury.PROVIDER_NAME] = executor.ProxyTarget{
			Strategy:        mcTransport,
			AllowedPrefixes: []string{"/accounts", "/account/"},
		}
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Dashboard:    cfg.Dashboard,
	}

	// Create and start server
	srv := server.New(serverConfig, profitwellClient, atlassianClient, mercuryClient, proxyTargets)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.Info("Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
