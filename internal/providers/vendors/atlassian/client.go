package atlassian

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/ratelimit"
	"github.com/finsight/revenue-dashboard/internal/revenue"
	"github.com/finsight/revenue-dashboard/internal/transport"
)

const PROVIDER_NAME = "atlassian"

// Client defines the interface for marketplace-billing operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/atlassian_client.go -package=mocks -mock_names=Client=MockAtlassianClient
type Client interface {
	// GetTransactions fetches the full sales transaction export
	GetTransactions(ctx context.Context) ([]Transaction, error)

	// GetChurnEvents fetches the churn details export
	GetChurnEvents(ctx context.Context) ([]ChurnEvent, error)

	// GetMRRBreakdown normalizes the transaction export and classifies the
	// last N months into the shared monthly-breakdown schema
	GetMRRBreakdown(ctx context.Context, months int) ([]domain.MonthlyBreakdown, error)

	// GetMonthlyData is GetMRRBreakdown plus per-customer movement detail
	GetMonthlyData(ctx context.Context, months int) ([]revenue.MonthlyData, error)
}

// AtlassianClient implements the marketplace-billing client
type AtlassianClient struct {
	transport      transport.Strategy
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	clock          adapter.Clock
	vendorID       string
}

// NewClient creates a new marketplace-billing client
func NewClient(strategy transport.Strategy, rateLimitProxy ratelimit.Proxy, json adapter.JSON, clock adapter.Clock, vendorID string) Client {
	return &AtlassianClient{
		transport:      strategy,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		clock:          clock,
		vendorID:       vendorID,
	}
}

// NewDirectTransport builds the direct transport with HTTP Basic auth
func NewDirectTransport(httpClient adapter.HTTPClient, cfg config.AtlassianConfig) (transport.Strategy, error) {
	if cfg.Email == "" || cfg.APIToken == "" || cfg.VendorID == "" {
		return nil, fmt.Errorf("atlassian: %w", domain.ErrMissingCredentials)
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.Email + ":" + cfg.APIToken))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
		"Accept":        "application/json",
	}
	return transport.NewDirect(httpClient, cfg.APIURL, headers), nil
}

// GetTransactions fetches the full sales transaction export
func (c *AtlassianClient) GetTransactions(ctx context.Context) ([]Transaction, error) {
	endpoint := fmt.Sprintf("/%s/reporting/sales/transactions/export", c.vendorID)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call transactions export API: %w", err)
	}

	var transactions []Transaction
	if err := c.json.Unmarshal(respBody, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions response: %w", err)
	}

	return transactions, nil
}

// GetChurnEvents fetches the churn details export
func (c *AtlassianClient) GetChurnEvents(ctx context.Context) ([]ChurnEvent, error) {
	endpoint := fmt.Sprintf("/%s/reporting/sales/metrics/churn/details/export", c.vendorID)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call churn details export API: %w", err)
	}

	var events []ChurnEvent
	if err := c.json.Unmarshal(respBody, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal churn events response: %w", err)
	}

	return events, nil
}

// GetMRRBreakdown normalizes the transaction export and classifies the last
// N months into the shared monthly-breakdown schema
func (c *AtlassianClient) GetMRRBreakdown(ctx context.Context, months int) ([]domain.MonthlyBreakdown, error) {
	table, err := c.monthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return revenue.AssembleBreakdowns(table, months, c.clock.Now()), nil
}

// GetMonthlyData is GetMRRBreakdown plus per-customer movement detail
func (c *AtlassianClient) GetMonthlyData(ctx context.Context, months int) ([]revenue.MonthlyData, error) {
	table, err := c.monthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return revenue.AssembleMonthlyData(table, months, c.clock.Now()), nil
}

func (c *AtlassianClient) monthlyRevenue(ctx context.Context) (domain.MonthlyRevenueTable, error) {
	transactions, err := c.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]domain.RawTransaction, 0, len(transactions))
	for _, t := range transactions {
		raw = append(raw, t.Raw())
	}

	return revenue.BuildMonthlyRevenue(raw), nil
}
