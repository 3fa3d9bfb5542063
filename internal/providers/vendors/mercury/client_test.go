package mercury_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/revenue-dashboard/internal/adapter"
	"github.com/finsight/revenue-dashboard/internal/config"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/mocks"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
)

const accountsJSON = `{
	"accounts": [
		{"id": "acc-1", "name": "Operating", "type": "checking", "availableBalance": 125000.50, "currentBalance": 126000, "currency": "USD"},
		{"id": "acc-2", "name": "Savings", "type": "savings", "availableBalance": 500000, "currentBalance": 500000, "currency": "USD"}
	]
}`

func newClient(t *testing.T) (mercury.Client, *mocks.MockStrategy, *mocks.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	strategy := mocks.NewMockStrategy(ctrl)
	clock := mocks.NewMockClock(ctrl)
	client := mercury.NewClient(strategy, nil, adapter.NewJSON(), clock)
	return client, strategy, clock
}

func TestGetAccounts(t *testing.T) {
	client, strategy, _ := newClient(t)

	ctx := context.Background()
	strategy.EXPECT().
		Get(ctx, "/accounts", nil).
		Return([]byte(accountsJSON), nil)

	accounts, err := client.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-1", accounts[0].ID)
	assert.True(t, accounts[0].AvailableBalance.Equal(decimal.RequireFromString("125000.50")))
}

func TestGetTransactions(t *testing.T) {
	client, strategy, _ := newClient(t)

	transactionsJSON := `{
		"transactions": [
			{"id": "t1", "accountId": "acc-1", "amount": 99.50, "currency": "USD", "description": "GITHUB", "counterpartyName": "GitHub", "createdAt": "2024-06-02T00:00:00Z", "postedAt": "2024-06-02T00:00:00Z", "status": "posted", "kind": "debit"}
		]
	}`

	expectedQuery := url.Values{}
	expectedQuery.Set("order", "desc")
	expectedQuery.Set("start", "2024-06-01")
	expectedQuery.Set("end", "2024-06-30")
	expectedQuery.Set("limit", "1000")

	strategy.EXPECT().
		Get(gomock.Any(), "/account/acc-1/transactions", expectedQuery).
		Return([]byte(transactionsJSON), nil)

	transactions, err := client.GetTransactions(context.Background(), "acc-1", mercury.TransactionQuery{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Limit:     1000,
	})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, mercury.KindDebit, transactions[0].Kind)
}

func TestGetBankBalances(t *testing.T) {
	client, strategy, clock := newClient(t)

	strategy.EXPECT().
		Get(gomock.Any(), "/accounts", nil).
		Return([]byte(accountsJSON), nil)
	clock.EXPECT().Now().Return(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC))

	balances, err := client.GetBankBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 2)

	assert.Equal(t, "mercury", balances[0].Source)
	assert.Equal(t, "Operating", balances[0].AccountName)
	assert.True(t, balances[0].Balance.Equal(decimal.RequireFromString("125000.50")))
	assert.Equal(t, "USD", balances[0].Currency)
	assert.Equal(t, "2024-06-15T12:00:00Z", balances[0].LastUpdated)
}

func TestGetBankBalances_AccountsError(t *testing.T) {
	client, strategy, _ := newClient(t)

	wantErr := errors.New("forbidden")
	strategy.EXPECT().
		Get(gomock.Any(), "/accounts", nil).
		Return(nil, wantErr)

	_, err := client.GetBankBalances(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestGetBurnRateMetrics(t *testing.T) {
	client, strategy, clock := newClient(t)

	singleAccountJSON := `{"accounts": [{"id": "acc-1", "name": "Operating", "type": "checking", "availableBalance": 100000, "currentBalance": 100000, "currency": "USD"}]}`

	mayJSON := `{
		"transactions": [
			{"id": "t1", "accountId": "acc-1", "amount": 400, "description": "GUSTO PAYROLL", "counterpartyName": "Gusto", "status": "posted", "kind": "debit", "createdAt": "2024-05-03T00:00:00Z", "postedAt": "2024-05-03T00:00:00Z", "currency": "USD"}
		]
	}`
	juneJSON := `{
		"transactions": [
			{"id": "t2", "accountId": "acc-1", "amount": 100, "description": "GITHUB SUBSCRIPTION", "counterpartyName": "GitHub", "status": "posted", "kind": "debit", "createdAt": "2024-06-02T00:00:00Z", "postedAt": "2024-06-02T00:00:00Z", "currency": "USD"},
			{"id": "t3", "accountId": "acc-1", "amount": 300, "description": "AWS CLOUD", "counterpartyName": "Amazon Web Services", "status": "posted", "kind": "debit", "createdAt": "2024-06-05T00:00:00Z", "postedAt": "2024-06-05T00:00:00Z", "currency": "USD"},
			{"id": "t4", "accountId": "acc-1", "amount": 5000, "description": "STRIPE PAYOUT", "counterpartyName": "Stripe", "status": "posted", "kind": "credit", "createdAt": "2024-06-06T00:00:00Z", "postedAt": "2024-06-06T00:00:00Z", "currency": "USD"}
		]
	}`

	clock.EXPECT().Now().Return(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	strategy.EXPECT().
		Get(gomock.Any(), "/accounts", nil).
		Return([]byte(singleAccountJSON), nil)

	mayQuery := url.Values{}
	mayQuery.Set("order", "desc")
	mayQuery.Set("start", "2024-05-01")
	mayQuery.Set("end", "2024-05-31")
	mayQuery.Set("limit", "1000")
	strategy.EXPECT().
		Get(gomock.Any(), "/account/acc-1/transactions", mayQuery).
		Return([]byte(mayJSON), nil)

	juneQuery := url.Values{}
	juneQuery.Set("order", "desc")
	juneQuery.Set("start", "2024-06-01")
	juneQuery.Set("end", "2024-06-30")
	juneQuery.Set("limit", "1000")
	strategy.EXPECT().
		Get(gomock.Any(), "/account/acc-1/transactions", juneQuery).
		Return([]byte(juneJSON), nil)

	metrics, err := client.GetBurnRateMetrics(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	may := metrics[0]
	assert.Equal(t, domain.Month("2024-05"), may.Period)
	assert.True(t, may.TotalBurn.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, may.TransactionCount)
	assert.True(t, may.CategoryBreakdown[mercury.CategoryPayroll].Equal(decimal.NewFromInt(400)))

	june := metrics[1]
	assert.Equal(t, domain.Month("2024-06"), june.Period)
	// Credits never count as burn
	assert.True(t, june.TotalBurn.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 2, june.TransactionCount)
	assert.True(t, june.AverageTransactionSize.Equal(decimal.NewFromInt(200)))
	assert.True(t, june.CategoryBreakdown[mercury.CategorySoftware].Equal(decimal.NewFromInt(400)))
	assert.True(t, june.VendorBreakdown["GitHub"].Equal(decimal.NewFromInt(100)))
	assert.True(t, june.VendorBreakdown["Amazon Web Services"].Equal(decimal.NewFromInt(300)))
}

func TestNewDirectTransport_AddsSecretTokenPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)

	strategy, err := mercury.NewDirectTransport(httpClient, config.MercuryConfig{
		APIURL: "https://api.mercury.com/api/v1",
		APIKey: "abc123",
	})
	require.NoError(t, err)

	expectedHeaders := map[string]string{
		"Authorization": "Bearer secret-token:abc123",
		"Content-Type":  "application/json",
	}
	httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://api.mercury.com/api/v1/accounts", expectedHeaders).
		Return([]byte(`{}`), nil)

	_, err = strategy.Get(context.Background(), "/accounts", nil)
	assert.NoError(t, err)
}

func TestNewDirectTransport_KeepsExistingPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	httpClient := mocks.NewMockHTTPClient(ctrl)

	strategy, err := mercury.NewDirectTransport(httpClient, config.MercuryConfig{
		APIURL: "https://api.mercury.com/api/v1",
		APIKey: "secret-token:abc123",
	})
	require.NoError(t, err)

	expectedHeaders := map[string]string{
		"Authorization": "Bearer secret-token:abc123",
		"Content-Type":  "application/json",
	}
	httpClient.EXPECT().
		GetBytes(gomock.Any(), "https://api.mercury.com/api/v1/accounts", expectedHeaders).
		Return([]byte(`{}`), nil)

	_, err = strategy.Get(context.Background(), "/accounts", nil)
	assert.NoError(t, err)
}

func TestNewDirectTransport_RequiresAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := mercury.NewDirectTransport(mocks.NewMockHTTPClient(ctrl), config.MercuryConfig{
		APIURL: "https://api.mercury.com/api/v1",
	})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}
