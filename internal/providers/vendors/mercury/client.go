package mercury

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/ratelimit"
	"github.com/finsight/revenue-dashboard/internal/transport"
)

const PROVIDER_NAME = "mercury"

// Spend categories used by the burn-rate breakdown
const (
	CategorySoftware = "Software & Tools"
	CategoryPayroll  = "Payroll"
	CategoryServices = "Professional Services"
	CategoryTaxes    = "Taxes"
	CategoryOther    = "Other"
)

// transactionPageLimit caps the per-account page size when scanning a month
const transactionPageLimit = 1000

// Client defines the interface for banking operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/mercury_client.go -package=mocks -mock_names=Client=MockMercuryClient
type Client interface {
	// GetAccounts fetches all bank accounts
	GetAccounts(ctx context.Context) ([]Account, error)

	// GetTransactions fetches transactions for one account, most recent first
	GetTransactions(ctx context.Context, accountID string, query TransactionQuery) ([]Transaction, error)

	// GetBankBalances snapshots the available balance of every account
	GetBankBalances(ctx context.Context) ([]BankBalance, error)

	// GetBurnRateMetrics computes per-month debit-side spend for the last N months
	GetBurnRateMetrics(ctx context.Context, months int) ([]BurnRateMetrics, error)
}

// MercuryClient implements the banking client
type MercuryClient struct {
	transport      transport.Strategy
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	clock          adapter.Clock
}

// NewClient creates a new banking client
func NewClient(strategy transport.Strategy, rateLimitProxy ratelimit.Proxy, json adapter.JSON, clock adapter.Clock) Client {
	return &MercuryClient{
		transport:      strategy,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		clock:          clock,
	}
}

// NewDirectTransport builds the direct transport with bearer auth. The
// vendor requires the "secret-token:" prefix on the key; it is added when
// the configured key lacks it.
func NewDirectTransport(httpClient adapter.HTTPClient, cfg config.MercuryConfig) (transport.Strategy, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mercury: %w", domain.ErrMissingCredentials)
	}
	key := cfg.APIKey
	if !strings.HasPrefix(key, "secret-token:") {
		key = "secret-token:" + key
	}
	headers := map[string]string{
		"Authorization": "Bearer " + key,
		"Content-Type":  "application/json",
	}
	return transport.NewDirect(httpClient, cfg.APIURL, headers), nil
}

// GetAccounts fetches all bank accounts
func (c *MercuryClient) GetAccounts(ctx context.Context) ([]Account, error) {
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, "/accounts", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call accounts API: %w", err)
	}

	var response accountsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts response: %w", err)
	}

	return response.Accounts, nil
}

// GetTransactions fetches transactions for one account, most recent first
func (c *MercuryClient) GetTransactions(ctx context.Context, accountID string, query TransactionQuery) ([]Transaction, error) {
	params := url.Values{}
	params.Set("order", "desc")
	if query.StartDate != "" {
		params.Set("start", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("end", query.EndDate)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}

	endpoint := fmt.Sprintf("/account/%s/transactions", accountID)
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.transport.Get(ctx, endpoint, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call transactions API: %w", err)
	}

	var response transactionsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions response: %w", err)
	}

	return response.Transactions, nil
}

// GetBankBalances snapshots the available balance of every account
func (c *MercuryClient) GetBankBalances(ctx context.Context) ([]BankBalance, error) {
	accounts, err := c.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now().UTC().Format(time.RFC3339)
	balances := make([]BankBalance, 0, len(accounts))
	for _, account := range accounts {
		balances = append(balances, BankBalance{
			Source:      PROVIDER_NAME,
			AccountName: account.Name,
			Balance:     account.AvailableBalance,
			Currency:    account.Currency,
			LastUpdated: now,
		})
	}

	return balances, nil
}

// GetBurnRateMetrics computes per-month debit-side spend for the last N
// months, oldest first. Only posted or pending debits with a positive amount
// count as burn.
func (c *MercuryClient) GetBurnRateMetrics(ctx context.Context, months int) ([]BurnRateMetrics, error) {
	accounts, err := c.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	currentMonth := domain.MonthOf(c.clock.Now())
	metrics := make([]BurnRateMetrics, 0, months)

	for i := months - 1; i >= 0; i-- {
		target := currentMonth.Add(-i)
		monthMetrics, err := c.burnForMonth(ctx, accounts, target)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, monthMetrics)
	}

	return metrics, nil
}

func (c *MercuryClient) burnForMonth(ctx context.Context, accounts []Account, month domain.Month) (BurnRateMetrics, error) {
	start := month.Time()
	query := TransactionQuery{
		StartDate: start.Format("2006-01-02"),
		EndDate:   start.AddDate(0, 1, -1).Format("2006-01-02"), // last day of the month
		Limit:     transactionPageLimit,
	}

	totalBurn := decimal.Zero
	vendorBreakdown := make(map[string]decimal.Decimal)
	categoryBreakdown := make(map[string]decimal.Decimal)
	count := 0

	for _, account := range accounts {
		transactions, err := c.GetTransactions(ctx, account.ID, query)
		if err != nil {
			return BurnRateMetrics{}, fmt.Errorf("account %s: %w", account.ID, err)
		}

		for _, txn := range transactions {
			if txn.Kind != KindDebit || !txn.Amount.IsPositive() {
				continue
			}

			vendor, category := categorize(txn)
			totalBurn = totalBurn.Add(txn.Amount)
			count++
			vendorBreakdown[vendor] = vendorBreakdown[vendor].Add(txn.Amount)
			categoryBreakdown[category] = categoryBreakdown[category].Add(txn.Amount)
		}
	}

	average := decimal.Zero
	if count > 0 {
		average = totalBurn.Div(decimal.NewFromInt(int64(count)))
	}

	return BurnRateMetrics{
		Period:                 month,
		TotalBurn:              totalBurn,
		VendorBreakdown:        vendorBreakdown,
		CategoryBreakdown:      categoryBreakdown,
		TransactionCount:       count,
		AverageTransactionSize: average,
	}, nil
}

// categorize assigns a transaction to a vendor and a spend category from
// description keywords
func categorize(txn Transaction) (vendor string, category string) {
	vendor = txn.CounterpartyName
	if vendor == "" {
		vendor = "Unknown"
	}

	description := strings.ToLower(txn.Description)
	switch {
	case containsAny(description, "stripe", "github", "vercel", "openai", "aws", "google cloud", "microsoft"):
		category = CategorySoftware
	case containsAny(description, "payroll", "salary", "gusto", "adp"):
		category = CategoryPayroll
	case containsAny(description, "legal", "accounting", "consulting", "service"):
		category = CategoryServices
	case containsAny(description, "tax", "irs"):
		category = CategoryTaxes
	default:
		category = CategoryOther
	}
	return vendor, category
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
