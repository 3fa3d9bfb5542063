package profitwell

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/ratelimit"
	"github.com/finsight/revenue-dashboard/internal/transport"
)

const PROVIDER_NAME = "profitwell"

// userAgent identifies this service to the vendor
const userAgent = "finsight-revenue-dashboard/1.0"

var hundred = decimal.NewFromInt(100)

// Client defines the interface for subscription-analytics operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/profitwell_client.go -package=mocks -mock_names=Client=MockProfitwellClient
type Client interface {
	// GetMonthlyMetrics fetches the raw parallel metric series
	GetMonthlyMetrics(ctx context.Context) (*MonthlyMetricsResponse, error)

	// GetMRRBreakdown transforms the last N months of metric series into the
	// shared monthly-breakdown schema
	GetMRRBreakdown(ctx context.Context, months int) ([]domain.MonthlyBreakdown, error)

	// GetCustomers fetches customer rows with optional filters
	GetCustomers(ctx context.Context, query CustomerQuery) ([]Customer, error)

	// GetDashboardMetrics computes customer-analytics aggregates from customer rows
	GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
}

// ProfitwellClient implements the subscription-analytics client
type ProfitwellClient struct {
	transport      transport.Strategy
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	clock          adapter.Clock
}

// NewClient creates a new subscription-analytics client
func NewClient(strategy transport.Strategy, rateLimitProxy ratelimit.Proxy, json adapter.JSON, clock adapter.Clock) Client {
	return &ProfitwellClient{
		transport:      strategy,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		clock:          clock,
	}
}

// NewDirectTransport builds the direct transport with the vendor's auth headers
func NewDirectTransport(httpClient adapter.HTTPClient, cfg config.ProfitwellConfig) (transport.Strategy, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("profitwell: %w", domain.ErrMissingCredentials)
	}
	headers := map[string]string{
		"Authorization": cfg.APIKey,
		"Content-Type":  "application/json",
		"User-Agent":    userAgent,
	}
	return transport.NewDirect(httpClient, cfg.APIURL, headers), nil
}

// GetMonthlyMetrics fetches the raw parallel metric series
func (c *ProfitwellClient) GetMonthlyMetrics(ctx context.Context) (*MonthlyMetricsResponse, error) {
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, "/metrics/monthly/", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call monthly metrics API: %w", err)
	}

	var response MonthlyMetricsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal monthly metrics response: %w", err)
	}

	return &response, nil
}

// GetMRRBreakdown transforms the last N months of metric series into the
// shared monthly-breakdown schema. The month axis comes from the
// recurring_revenue series; sibling series are read by index and treated as
// zero when shorter.
func (c *ProfitwellClient) GetMRRBreakdown(ctx context.Context, months int) ([]domain.MonthlyBreakdown, error) {
	response, err := c.GetMonthlyMetrics(ctx)
	if err != nil {
		return nil, err
	}

	data := response.Data
	total := len(data.RecurringRevenue)
	start := max(0, total-months)

	breakdowns := make([]domain.MonthlyBreakdown, 0, total-start)
	for i := start; i < total; i++ {
		point := data.RecurringRevenue[i]
		if !point.Date.Valid() {
			continue
		}

		totalMRR := point.Value
		breakdowns = append(breakdowns, domain.MonthlyBreakdown{
			Date:            point.Date,
			NewRevenue:      seriesValue(data.NewRecurringRevenue, i),
			Reactivations:   seriesValue(data.ReactivatedRecurringRevenue, i),
			Upgrades:        seriesValue(data.UpgradedRecurringRevenue, i),
			Downgrades:      seriesValue(data.DowngradedRecurringRevenue, i),
			VoluntaryChurn:  seriesValue(data.ChurnedRevenueCancellations, i),
			DelinquentChurn: seriesValue(data.ChurnedRevenueDelinquent, i),
			Existing:        seriesValue(data.ExistingRecurringRevenue, i),
			TotalMRR:        totalMRR,
			ARR:             totalMRR.Mul(decimal.NewFromInt(12)),
		})
	}

	return breakdowns, nil
}

// GetCustomers fetches customer rows with optional filters
func (c *ProfitwellClient) GetCustomers(ctx context.Context, query CustomerQuery) ([]Customer, error) {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(query.PerPage))
	}
	if query.Status != "" {
		params.Set("status", query.Status)
	}
	if query.CreatedAfter != "" {
		params.Set("created_after", query.CreatedAfter)
	}
	if query.CreatedBefore != "" {
		params.Set("created_before", query.CreatedBefore)
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, "/customers/", params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call customers API: %w", err)
	}

	// The customers endpoint returns a bare array
	var customers []Customer
	if err := c.json.Unmarshal(respBody, &customers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customers response: %w", err)
	}

	return customers, nil
}

// GetDashboardMetrics computes customer-analytics aggregates from customer rows
func (c *ProfitwellClient) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	// 250 is the endpoint's maximum page size
	customers, err := c.GetCustomers(ctx, CustomerQuery{PerPage: 250})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer data: %w", err)
	}

	now := c.clock.Now()
	return &DashboardMetrics{
		Customers:         customers,
		CalculatedMRR:     calculateMRRMetrics(customers),
		CalculatedChurn:   calculateChurnMetrics(customers, domain.MonthOf(now)),
		CalculatedRevenue: calculateRevenueMetrics(customers),
		ProductMetrics:    calculateProductMetrics(customers),
		LastUpdated:       now.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func calculateMRRMetrics(customers []Customer) CalculatedMRR {
	var currentMRR int64
	var active, churned int
	for _, c := range customers {
		if c.IsActive() {
			active++
			currentMRR += c.MRRCents
		}
		if c.IsChurned() {
			churned++
		}
	}

	averageMRR := decimal.Zero
	if active > 0 {
		averageMRR = decimal.NewFromInt(currentMRR).Div(decimal.NewFromInt(int64(active)))
	}

	return CalculatedMRR{
		CurrentMRRCents:       currentMRR,
		ActiveCustomers:       active,
		ChurnedCustomers:      churned,
		TotalCustomers:        len(customers),
		AverageMRRPerCustomer: averageMRR,
	}
}

func calculateChurnMetrics(customers []Customer, currentMonth domain.Month) CalculatedChurn {
	var churned, voluntary, delinquent, trial, churnedThisMonth int
	for _, c := range customers {
		if !c.IsChurned() {
			continue
		}
		churned++
		switch c.Status {
		case StatusChurnedVoluntary:
			voluntary++
		case StatusChurnedDelinquent:
			delinquent++
		case StatusChurnedTrial:
			trial++
		}
		if c.ChurnedOn != nil && len(*c.ChurnedOn) >= 7 && domain.Month((*c.ChurnedOn)[:7]) == currentMonth {
			churnedThisMonth++
		}
	}

	churnRate := decimal.Zero
	if len(customers) > 0 {
		churnRate = decimal.NewFromInt(int64(churned)).Div(decimal.NewFromInt(int64(len(customers)))).Mul(hundred)
	}

	return CalculatedChurn{
		ChurnRate:        churnRate,
		ChurnedThisMonth: churnedThisMonth,
		VoluntaryChurn:   voluntary,
		DelinquentChurn:  delinquent,
		TrialChurn:       trial,
	}
}

func calculateRevenueMetrics(customers []Customer) CalculatedRevenue {
	var totalRevenue, activeMRR, churnedRevenue int64
	for _, c := range customers {
		totalRevenue += c.TotalSpendCents
		if c.IsActive() {
			activeMRR += c.MRRCents
		}
		if c.IsChurned() {
			churnedRevenue += c.TotalSpendCents
		}
	}

	averageValue := decimal.Zero
	if len(customers) > 0 {
		averageValue = decimal.NewFromInt(totalRevenue).Div(decimal.NewFromInt(int64(len(customers))))
	}

	return CalculatedRevenue{
		TotalRevenueCents:    totalRevenue,
		AverageCustomerValue: averageValue,
		TotalActiveMRR:       activeMRR,
		TotalChurnedRevenue:  churnedRevenue,
	}
}

func calculateProductMetrics(customers []Customer) ProductMetrics {
	metrics := make(ProductMetrics)
	planChurned := make(map[string]int)

	for _, c := range customers {
		for _, plan := range c.Plans {
			m := metrics[plan]
			m.CustomerCount++
			m.TotalMRRCents += c.MRRCents
			metrics[plan] = m

			if c.IsChurned() {
				planChurned[plan]++
			}
		}
	}

	for plan, m := range metrics {
		if m.CustomerCount > 0 {
			m.ChurnRate = decimal.NewFromInt(int64(planChurned[plan])).
				Div(decimal.NewFromInt(int64(m.CustomerCount))).
				Mul(hundred)
			metrics[plan] = m
		}
	}

	return metrics
}

// seriesValue reads a series by index, treating a short series as zero
func seriesValue(series []MonthlyDataPoint, i int) decimal.Decimal {
	if i < 0 || i >= len(series) {
		return decimal.Zero
	}
	return series[i].Value
}
