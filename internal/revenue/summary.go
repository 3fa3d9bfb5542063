package revenue

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Summarize derives the consumer-facing metrics from the latest one or two
// records of a combined series. Returns nil when the series is empty.
//
// The adjusted total is preferred over the raw combined total wherever one is
// attached. Every division is guarded: zero previous MRR yields 0% growth and
// zero current MRR yields 0% source percentages, never NaN or infinity.
func Summarize(combined []domain.CombinedMonthlyBreakdown) *domain.SummaryMetrics {
	if len(combined) == 0 {
		return nil
	}

	latest := combined[len(combined)-1]

	currentMRR := latest.EffectiveTotalMRR()

	var previousMRR decimal.Decimal
	if len(combined) > 1 {
		previous := combined[len(combined)-2]
		previousMRR = previous.EffectiveTotalMRR()
	}

	var growth decimal.Decimal
	if previousMRR.IsPositive() {
		growth = currentMRR.Sub(previousMRR).Div(previousMRR).Mul(hundred)
	}

	// The effective marketplace MRR accounts for the adjustment when applied
	effectiveAtlassianMRR := latest.Atlassian.TotalMRR
	if latest.AdjustedMRR != nil {
		effectiveAtlassianMRR = latest.AdjustedMRR.Atlassian
	}

	var profitwellPercentage, atlassianPercentage decimal.Decimal
	if currentMRR.IsPositive() {
		profitwellPercentage = latest.Profitwell.TotalMRR.Div(currentMRR).Mul(hundred)
		atlassianPercentage = effectiveAtlassianMRR.Div(currentMRR).Mul(hundred)
	}

	metrics := &domain.SummaryMetrics{
		CurrentMRR:           currentMRR,
		CurrentARR:           currentMRR.Mul(twelve),
		MonthlyGrowth:        growth,
		NewRevenue:           latest.Combined.NewRevenue,
		ChurnRevenue:         latest.Combined.VoluntaryChurn.Add(latest.Combined.DelinquentChurn).Abs(),
		NetGrowth:            latest.Combined.NewRevenue.Add(latest.Combined.VoluntaryChurn).Add(latest.Combined.DelinquentChurn),
		ProfitwellMRR:        latest.Profitwell.TotalMRR,
		AtlassianMRR:         effectiveAtlassianMRR,
		ProfitwellPercentage: profitwellPercentage,
		AtlassianPercentage:  atlassianPercentage,
		RawMRR:               latest.Combined.TotalMRR,
		IsAdjusted:           latest.AdjustedMRR != nil,
	}

	if latest.AdjustedMRR != nil {
		metrics.AdjustmentNote = latest.AdjustedMRR.Note
	}

	return metrics
}
