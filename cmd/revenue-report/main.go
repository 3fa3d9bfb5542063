package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/api/shared/dto"
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
	months     = flag.Int("months", 0, "Months window for the report (defaults to the configured dashboard window)")
	outPath    = flag.String("out", "", "Write the report to a file instead of stdout")
)

// report is the one-shot reconciliation output
type report struct {
	GeneratedAt string                            `json:"generated_at"`
	Months      int                               `json:"months"`
	Summary     *domain.SummaryMetrics            `json:"summary,omitempty"`
	Combined    []domain.CombinedMonthlyBreakdown `json:"combined"`
	Sources     dto.SourceStatus                  `json:"sources"`
	BurnRate    []mercury.BurnRateMetrics         `json:"burn_rate,omitempty"`
}

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReportConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "revenue-report",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	window := *months
	if window == 0 {
		window = cfg.Dashboard.DefaultMonths
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.Fatal("Failed to initialize rate limiter", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	// Construct vendor clients. Unconfigured sources degrade to empty series.
	var profitwellClient profitwell.Client
	if pwTransport, err := profitwell.NewDirectTransport(httpClient, cfg.Vendors.Profitwell); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct subscription-analytics transport", zap.Error(err))
		}
		logger.Warn("Subscription-analytics source not configured")
	} else {
		profitwellClient = profitwell.NewClient(pwTransport, rateLimitProxy, jsonAdapter, clock)
	}

	var atlassianClient atlassian.Client
	if atlTransport, err := atlassian.NewDirectTransport(httpClient, cfg.Vendors.Atlassian); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct marketplace-billing transport", zap.Error(err))
		}
		logger.Warn("Marketplace-billing source not configured")
	} else {
		atlassianClient = atlassian.NewClient(atlTransport, rateLimitProxy, jsonAdapter, clock, cfg.Vendors.Atlassian.VendorID)
	}

	var mercuryClient mercury.Client
	if mcTransport, err := mercury.NewDirectTransport(httpClient, cfg.Vendors.Mercury); err != nil {
		if !errors.Is(err, domain.ErrMissingCredentials) {
			logger.Fatal("Failed to construct banking transport", zap.Error(err))
		}
		logger.Warn("Banking source not configured")
	} else {
		mercuryClient = mercury.NewClient(mcTransport, rateLimitProxy, jsonAdapter, clock)
	}

	exec := executor.NewExecutor(profitwellClient, atlassianClient, mercuryClient, nil)

	combined, err := exec.GetCombinedSeries(ctx, window)
	if err != nil {
		logger.Fatal("Failed to build combined series", zap.Error(err))
	}

	out := report{
		GeneratedAt: clock.Now().UTC().Format(time.RFC3339),
		Months:      window,
		Combined:    combined.Data,
		Sources:     combined.Sources,
	}

	if summary, err := exec.GetSummary(ctx, window); err != nil {
		logger.Warn("No summary available", zap.Error(err))
	} else {
		out.Summary = summary.Data
	}

	if mercuryClient != nil {
		if burn, err := exec.GetBurnRate(ctx, cfg.Dashboard.BurnRateMonths); err != nil {
			logger.Warn("Burn rate unavailable", zap.Error(err))
		} else {
			out.BurnRate = burn.Data
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode report", zap.Error(err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, encoded, 0o644); err != nil {
			logger.Fatal("Failed to write report", zap.Error(err), zap.String("path", *outPath))
		}
		logger.Info("Report written", zap.String("path", *outPath))
		return
	}
	fmt.Println(string(encoded))
}
