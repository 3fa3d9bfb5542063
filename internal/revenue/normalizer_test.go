package revenue_test

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/logger"
	"github.com/finsight/revenue-dashboard/internal/revenue"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// dec parses a decimal literal for test fixtures
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal fails the test when actual is not numerically equal to the expected literal
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual),
		append([]interface{}{}, append([]interface{}{"expected " + expected + ", got " + actual.String()}, msgAndArgs...)...)...)
}

func TestBuildMonthlyRevenue_AnnualSpread(t *testing.T) {
	table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{
		{
			Customer:      "cloud-1",
			SaleDate:      "2024-03-15",
			SaleType:      domain.SaleTypeNew,
			BillingPeriod: domain.BillingPeriodAnnual,
			PurchasePrice: dec("120"),
		},
	})

	// 120/12 lands in each of the 12 months starting at the sale month
	for i := 0; i < 12; i++ {
		month := domain.Month("2024-03").Add(i)
		assertDecimal(t, "10", table.Customers(month)["cloud-1"], "month %s", month)
	}

	// Nothing outside the window
	assert.Empty(t, table.Customers("2024-02"))
	assert.Empty(t, table.Customers("2025-03"))
}

func TestBuildMonthlyRevenue_AnnualSpreadCrossesYearBoundary(t *testing.T) {
	table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{
		{
			Customer:      "cloud-1",
			SaleDate:      "2023-11-01",
			SaleType:      domain.SaleTypeRenewal,
			BillingPeriod: domain.BillingPeriodAnnual,
			PurchasePrice: dec("1200"),
		},
	})

	assertDecimal(t, "100", table.Customers("2023-11")["cloud-1"])
	assertDecimal(t, "100", table.Customers("2024-01")["cloud-1"])
	assertDecimal(t, "100", table.Customers("2024-10")["cloud-1"])
	assert.Empty(t, table.Customers("2024-11"))
}

func TestBuildMonthlyRevenue_Monthly(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.RawTransaction
		want string
	}{
		{
			name: "new contributes full price",
			txn: domain.RawTransaction{
				Customer: "c", SaleDate: "2024-06-02",
				SaleType: domain.SaleTypeNew, BillingPeriod: domain.BillingPeriodMonthly,
				PurchasePrice: dec("50"),
			},
			want: "50",
		},
		{
			name: "renewal contributes full price",
			txn: domain.RawTransaction{
				Customer: "c", SaleDate: "2024-06-02",
				SaleType: domain.SaleTypeRenewal, BillingPeriod: domain.BillingPeriodMonthly,
				PurchasePrice: dec("75.50"),
			},
			want: "75.50",
		},
		{
			name: "upgrade contributes delta over prior price",
			txn: domain.RawTransaction{
				Customer: "c", SaleDate: "2024-06-02",
				SaleType: domain.SaleTypeUpgrade, BillingPeriod: domain.BillingPeriodMonthly,
				PurchasePrice: dec("100"), OldPurchasePrice: dec("60"),
			},
			want: "40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{tt.txn})
			assertDecimal(t, tt.want, table.Customers("2024-06")["c"])
		})
	}
}

func TestBuildMonthlyRevenue_AccumulatesSameCustomerMonth(t *testing.T) {
	table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{
		{Customer: "c", SaleDate: "2024-06-01", SaleType: domain.SaleTypeNew, BillingPeriod: domain.BillingPeriodMonthly, PurchasePrice: dec("30")},
		{Customer: "c", SaleDate: "2024-06-20", SaleType: domain.SaleTypeRenewal, BillingPeriod: domain.BillingPeriodMonthly, PurchasePrice: dec("20")},
	})

	assertDecimal(t, "50", table.Customers("2024-06")["c"])
}

func TestBuildMonthlyRevenue_SkipsUnparseableDates(t *testing.T) {
	table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{
		{Customer: "bad", SaleDate: "not-a-date", SaleType: domain.SaleTypeNew, BillingPeriod: domain.BillingPeriodMonthly, PurchasePrice: dec("999")},
		{Customer: "good", SaleDate: "2024-06-01", SaleType: domain.SaleTypeNew, BillingPeriod: domain.BillingPeriodMonthly, PurchasePrice: dec("10")},
	})

	require.Len(t, table, 1)
	assertDecimal(t, "10", table.Customers("2024-06")["good"])
	_, exists := table.Customers("2024-06")["bad"]
	assert.False(t, exists)
}

func TestBuildMonthlyRevenue_ConservationOfValue(t *testing.T) {
	// Across all months, a customer's table entries must sum to their total
	// recognized revenue under the annual-spread and monthly-delta rules.
	table := revenue.BuildMonthlyRevenue([]domain.RawTransaction{
		{Customer: "c", SaleDate: "2024-03-10", SaleType: domain.SaleTypeNew, BillingPeriod: domain.BillingPeriodAnnual, PurchasePrice: dec("120")},
		{Customer: "c", SaleDate: "2024-05-01", SaleType: domain.SaleTypeUpgrade, BillingPeriod: domain.BillingPeriodMonthly, PurchasePrice: dec("90"), OldPurchasePrice: dec("40")},
	})

	total := decimal.Zero
	for month := range table {
		total = total.Add(table.Customers(month)["c"])
	}

	assertDecimal(t, "170", total) // 120 annual + (90-40) upgrade delta
}
