package dto

import (
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
)

// SourceStatus tells the dashboard which sources contributed to a response.
// A source that errored or returned nothing is reported as unavailable
// rather than failing the whole response.
type SourceStatus struct {
	Profitwell bool `json:"profitwell"`
	Atlassian  bool `json:"atlassian"`
}

// BreakdownSeriesResponse is a per-source monthly breakdown series
type BreakdownSeriesResponse struct {
	Data []domain.MonthlyBreakdown `json:"data"`
}

// CombinedSeriesResponse is the merged two-source series
type CombinedSeriesResponse struct {
	Data    []domain.CombinedMonthlyBreakdown `json:"data"`
	Sources SourceStatus                      `json:"sources"`
}

// SummaryResponse carries the derived summary metrics
type SummaryResponse struct {
	Data    *domain.SummaryMetrics `json:"data"`
	Sources SourceStatus           `json:"sources"`
}

// BankBalancesResponse lists current account balances
type BankBalancesResponse struct {
	Data []mercury.BankBalance `json:"data"`
}

// BurnRateResponse lists per-month burn metrics
type BurnRateResponse struct {
	Data []mercury.BurnRateMetrics `json:"data"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}
