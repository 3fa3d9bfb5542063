package executor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finsight/revenue-dashboard/internal/api/shared/dto"
	apierrors "github.com/finsight/revenue-dashboard/internal/api/shared/errors"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/logger"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/atlassian"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/profitwell"
	"github.com/finsight/revenue-dashboard/internal/revenue"
	"github.com/finsight/revenue-dashboard/internal/transport"
)

// ProxyTarget is one vendor reachable through the pass-through proxy route.
// Endpoints are checked against the allowed prefixes before forwarding.
type ProxyTarget struct {
	Strategy        transport.Strategy
	AllowedPrefixes []string
}

// Executor is the interface for the API executor. It owns the business logic
// shared by every handler: fetching the sources, running the merge, and
// degrading unavailable sources to empty series instead of failing.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetCombinedSeries fetches both revenue sources and merges them
	GetCombinedSeries(ctx context.Context, months int) (*dto.CombinedSeriesResponse, error)

	// GetSummary derives summary metrics from the combined series
	GetSummary(ctx context.Context, months int) (*dto.SummaryResponse, error)

	// GetProfitwellSeries fetches the subscription-analytics breakdown series
	GetProfitwellSeries(ctx context.Context, months int) (*dto.BreakdownSeriesResponse, error)

	// GetAtlassianSeries fetches the marketplace-billing breakdown series
	GetAtlassianSeries(ctx context.Context, months int) (*dto.BreakdownSeriesResponse, error)

	// GetBankBalances snapshots current account balances
	GetBankBalances(ctx context.Context) (*dto.BankBalancesResponse, error)

	// GetBurnRate computes per-month debit-side spend
	GetBurnRate(ctx context.Context, months int) (*dto.BurnRateResponse, error)

	// ProxyRequest forwards an allowlisted endpoint to a vendor API
	ProxyRequest(ctx context.Context, vendor string, endpoint string) ([]byte, error)
}

type executor struct {
	profitwell   profitwell.Client
	atlassian    atlassian.Client
	mercury      mercury.Client
	proxyTargets map[string]ProxyTarget
}

// NewExecutor creates the shared API executor. A nil vendor client means the
// source is not configured; its routes degrade rather than fail at startup.
func NewExecutor(pw profitwell.Client, atl atlassian.Client, mc mercury.Client, proxyTargets map[string]ProxyTarget) Executor {
	return &executor{
		profitwell:   pw,
		atlassian:    atl,
		mercury:      mc,
		proxyTargets: proxyTargets,
	}
}

// fetchSources fetches both revenue series concurrently. A source that is
// unconfigured, errors, or returns nothing degrades to an empty series; the
// availability flags tell the caller which sources actually contributed.
func (e *executor) fetchSources(ctx context.Context, months int) ([]domain.MonthlyBreakdown, []domain.MonthlyBreakdown, dto.SourceStatus) {
	var pwSeries, atlSeries []domain.MonthlyBreakdown

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if e.profitwell == nil {
			return nil
		}
		series, err := e.profitwell.GetMRRBreakdown(gctx, months)
		if err != nil {
			logger.Warn("subscription-analytics source unavailable, degrading to empty series", zap.Error(err))
			return nil
		}
		pwSeries = series
		return nil
	})
	g.Go(func() error {
		if e.atlassian == nil {
			return nil
		}
		series, err := e.atlassian.GetMRRBreakdown(gctx, months)
		if err != nil {
			logger.Warn("marketplace-billing source unavailable, degrading to empty series", zap.Error(err))
			return nil
		}
		atlSeries = series
		return nil
	})
	// Both goroutines swallow their errors, so Wait only synchronizes
	_ = g.Wait()

	status := dto.SourceStatus{
		Profitwell: len(pwSeries) > 0,
		Atlassian:  len(atlSeries) > 0,
	}
	return pwSeries, atlSeries, status
}

// GetCombinedSeries fetches both revenue sources and merges them
func (e *executor) GetCombinedSeries(ctx context.Context, months int) (*dto.CombinedSeriesResponse, error) {
	pwSeries, atlSeries, status := e.fetchSources(ctx, months)

	return &dto.CombinedSeriesResponse{
		Data:    revenue.Combine(pwSeries, atlSeries),
		Sources: status,
	}, nil
}

// GetSummary derives summary metrics from the combined series
func (e *executor) GetSummary(ctx context.Context, months int) (*dto.SummaryResponse, error) {
	pwSeries, atlSeries, status := e.fetchSources(ctx, months)

	summary := revenue.Summarize(revenue.Combine(pwSeries, atlSeries))
	if summary == nil {
		return nil, apierrors.NewNoDataError("No revenue data available from any source")
	}

	return &dto.SummaryResponse{
		Data:    summary,
		Sources: status,
	}, nil
}

// GetProfitwellSeries fetches the subscription-analytics breakdown series
func (e *executor) GetProfitwellSeries(ctx context.Context, months int) (*dto.BreakdownSeriesResponse, error) {
	if e.profitwell == nil {
		return nil, apierrors.NewUpstreamError("Subscription-analytics source is not configured")
	}
	series, err := e.profitwell.GetMRRBreakdown(ctx, months)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch subscription-analytics data", err.Error())
	}
	return &dto.BreakdownSeriesResponse{Data: series}, nil
}

// GetAtlassianSeries fetches the marketplace-billing breakdown series
func (e *executor) GetAtlassianSeries(ctx context.Context, months int) (*dto.BreakdownSeriesResponse, error) {
	if e.atlassian == nil {
		return nil, apierrors.NewUpstreamError("Marketplace-billing source is not configured")
	}
	series, err := e.atlassian.GetMRRBreakdown(ctx, months)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch marketplace-billing data", err.Error())
	}
	return &dto.BreakdownSeriesResponse{Data: series}, nil
}

// GetBankBalances snapshots current account balances
func (e *executor) GetBankBalances(ctx context.Context) (*dto.BankBalancesResponse, error) {
	if e.mercury == nil {
		return nil, apierrors.NewUpstreamError("Banking source is not configured")
	}
	balances, err := e.mercury.GetBankBalances(ctx)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch bank balances", err.Error())
	}
	return &dto.BankBalancesResponse{Data: balances}, nil
}

// GetBurnRate computes per-month debit-side spend
func (e *executor) GetBurnRate(ctx context.Context, months int) (*dto.BurnRateResponse, error) {
	if e.mercury == nil {
		return nil, apierrors.NewUpstreamError("Banking source is not configured")
	}
	metrics, err := e.mercury.GetBurnRateMetrics(ctx, months)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to compute burn rate", err.Error())
	}
	return &dto.BurnRateResponse{Data: metrics}, nil
}

// ProxyRequest forwards an allowlisted endpoint to a vendor API. Credentials
// stay server-side; the caller only names the vendor and the endpoint.
func (e *executor) ProxyRequest(ctx context.Context, vendor string, endpoint string) ([]byte, error) {
	target, ok := e.proxyTargets[vendor]
	if !ok {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Unknown proxy vendor '%s'", vendor))
	}

	if !endpointAllowed(endpoint, target.AllowedPrefixes) {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Endpoint not allowed for vendor '%s'", vendor), endpoint)
	}

	body, err := target.Strategy.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Proxied vendor request failed", err.Error())
	}
	return body, nil
}

// endpointAllowed checks the endpoint against the vendor's prefix allowlist.
// Path traversal never passes, regardless of prefix.
func endpointAllowed(endpoint string, prefixes []string) bool {
	if strings.Contains(endpoint, "..") {
		return false
	}
	normalized := "/" + strings.TrimLeft(endpoint, "/")
	for _, prefix := range prefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}
