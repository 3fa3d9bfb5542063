package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2024-06", false},
		{"valid december", "2024-12", false},
		{"month zero", "2024-00", true},
		{"month thirteen", "2024-13", true},
		{"full date", "2024-06-01", true},
		{"empty", "", true},
		{"garbage", "junk", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Month(tt.input), m)
			assert.True(t, m.Valid())
		})
	}
}

func TestMonth_Add(t *testing.T) {
	assert.Equal(t, domain.Month("2024-07"), domain.Month("2024-06").Add(1))
	assert.Equal(t, domain.Month("2025-05"), domain.Month("2024-06").Add(11))
	assert.Equal(t, domain.Month("2024-12"), domain.Month("2025-01").Add(-1))
	assert.Equal(t, domain.Month("2024-06"), domain.Month("2024-06").Add(0))
}

func TestMonth_Before(t *testing.T) {
	assert.True(t, domain.Month("2024-05").Before("2024-06"))
	assert.True(t, domain.Month("2023-12").Before("2024-01"))
	assert.False(t, domain.Month("2024-06").Before("2024-06"))
	assert.False(t, domain.Month("2024-07").Before("2024-06"))
}

func TestMonthOf(t *testing.T) {
	ts := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, domain.Month("2024-03"), domain.MonthOf(ts))
}

func TestMonthlyRevenueTable_Add(t *testing.T) {
	table := domain.MonthlyRevenueTable{}

	table.Add("2024-06", "cust-1", decimal.NewFromInt(100))
	table.Add("2024-06", "cust-1", decimal.NewFromInt(50))
	table.Add("2024-06", "cust-2", decimal.NewFromInt(10))

	customers := table.Customers("2024-06")
	assert.True(t, decimal.NewFromInt(150).Equal(customers["cust-1"]))
	assert.True(t, decimal.NewFromInt(10).Equal(customers["cust-2"]))
}

func TestMonthlyRevenueTable_CustomersMissingMonth(t *testing.T) {
	table := domain.MonthlyRevenueTable{}

	customers := table.Customers("2024-01")
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCombinedMonthlyBreakdown_EffectiveTotalMRR(t *testing.T) {
	record := domain.CombinedMonthlyBreakdown{
		Combined: domain.MonthlyBreakdown{TotalMRR: decimal.NewFromInt(5800)},
	}
	assert.True(t, decimal.NewFromInt(5800).Equal(record.EffectiveTotalMRR()))

	record.AdjustedMRR = &domain.AdjustedMRR{Total: decimal.NewFromInt(6000)}
	assert.True(t, decimal.NewFromInt(6000).Equal(record.EffectiveTotalMRR()))
}
