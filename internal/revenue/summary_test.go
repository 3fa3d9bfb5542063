package revenue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/revenue"
)

func TestSummarize_EmptySeries(t *testing.T) {
	assert.Nil(t, revenue.Summarize(nil))
	assert.Nil(t, revenue.Summarize([]domain.CombinedMonthlyBreakdown{}))
}

func TestSummarize_SingleMonth(t *testing.T) {
	combined := revenue.Combine([]domain.MonthlyBreakdown{
		{
			Date:            "2024-01",
			NewRevenue:      dec("200"),
			Upgrades:        dec("50"),
			VoluntaryChurn:  dec("-30"),
			DelinquentChurn: dec("-20"),
			Existing:        dec("800"),
			TotalMRR:        dec("1000"),
			ARR:             dec("12000"),
		},
	}, nil)

	summary := revenue.Summarize(combined)
	require.NotNil(t, summary)

	assertDecimal(t, "1000", summary.CurrentMRR)
	assertDecimal(t, "12000", summary.CurrentARR)
	assertDecimal(t, "0", summary.MonthlyGrowth) // no previous month: 0%, not a division error
	assertDecimal(t, "200", summary.NewRevenue)
	assertDecimal(t, "50", summary.ChurnRevenue)
	assertDecimal(t, "150", summary.NetGrowth) // 200 - 30 - 20
	assertDecimal(t, "1000", summary.RawMRR)
	assert.False(t, summary.IsAdjusted)
	assert.Empty(t, summary.AdjustmentNote)
}

func TestSummarize_Growth(t *testing.T) {
	combined := revenue.Combine([]domain.MonthlyBreakdown{
		breakdown("2024-05", "1000"),
		breakdown("2024-06", "1100"),
	}, nil)

	summary := revenue.Summarize(combined)
	require.NotNil(t, summary)
	assertDecimal(t, "10", summary.MonthlyGrowth)
}

func TestSummarize_ZeroCurrentMRR(t *testing.T) {
	combined := revenue.Combine([]domain.MonthlyBreakdown{
		breakdown("2024-06", "0"),
	}, nil)

	summary := revenue.Summarize(combined)
	require.NotNil(t, summary)
	assertDecimal(t, "0", summary.CurrentMRR)
	assertDecimal(t, "0", summary.ProfitwellPercentage)
	assertDecimal(t, "0", summary.AtlassianPercentage)
}

func TestSummarize_PrefersAdjustedTotal(t *testing.T) {
	profitwell := []domain.MonthlyBreakdown{
		breakdown("2024-05", "4800"),
		breakdown("2024-06", "5000"),
	}
	atlassian := []domain.MonthlyBreakdown{
		breakdown("2024-05", "1000"),
		breakdown("2024-06", "800"),
	}

	summary := revenue.Summarize(revenue.Combine(profitwell, atlassian))
	require.NotNil(t, summary)

	assert.True(t, summary.IsAdjusted)
	assertDecimal(t, "6000", summary.CurrentMRR)
	assertDecimal(t, "72000", summary.CurrentARR)
	assertDecimal(t, "5800", summary.RawMRR)
	assertDecimal(t, "1000", summary.AtlassianMRR) // the substituted prior-month total
	assert.NotEmpty(t, summary.AdjustmentNote)

	// Percentages are taken against the adjusted current MRR
	// 5000/6000 and 1000/6000
	assert.True(t, summary.ProfitwellPercentage.Sub(dec("83.3333333333333333")).Abs().LessThan(dec("0.0001")))
	assert.True(t, summary.AtlassianPercentage.Sub(dec("16.6666666666666667")).Abs().LessThan(dec("0.0001")))
}

func TestSummarize_GrowthUsesPreviousEffectiveTotal(t *testing.T) {
	combined := revenue.Combine([]domain.MonthlyBreakdown{
		breakdown("2024-04", "800"),
		breakdown("2024-05", "1000"),
		breakdown("2024-06", "1250"),
	}, nil)

	summary := revenue.Summarize(combined)
	require.NotNil(t, summary)
	assertDecimal(t, "25", summary.MonthlyGrowth)
}
