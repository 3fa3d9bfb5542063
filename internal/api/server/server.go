package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finsight/revenue-dashboard/internal/api/middleware"
	"github.com/finsight/revenue-dashboard/internal/api/rest"
	"github.com/finsight/revenue-dashboard/internal/api/shared/executor"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/logger"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/atlassian"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/profitwell"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Dashboard    config.DashboardConfig
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	profitwell   profitwell.Client
	atlassian    atlassian.Client
	mercury      mercury.Client
	proxyTargets map[string]executor.ProxyTarget
	httpServer   *http.Server
}

// New creates a new API server. Vendor clients may be nil when a source is
// not configured; the executor degrades the affected routes.
func New(cfg Config, pw profitwell.Client, atl atlassian.Client, mc mercury.Client, proxyTargets map[string]executor.ProxyTarget) *Server {
	return &Server{
		config:       cfg,
		profitwell:   pw,
		atlassian:    atl,
		mercury:      mc,
		proxyTargets: proxyTargets,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor holding the reconciliation business logic
	exec := executor.NewExecutor(s.profitwell, s.atlassian, s.mercury, s.proxyTargets)

	// Create REST handler
	restHandler := rest.NewHandler(exec, s.config.Dashboard.DefaultMonths, s.config.Dashboard.BurnRateMonths)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
