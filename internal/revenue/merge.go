package revenue

import (
	"fmt"
	"sort"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

// Combine aligns the two per-source breakdown series by calendar month and
// merges them into one combined series covering the union of both sets of
// months, sorted ascending. A month missing from either source is treated as
// zero-filled for that source; an entirely empty source still yields a full
// combined series from the other.
//
// For the chronologically last record only, when the marketplace source has
// at least two records and its prior total exceeds its current one, an
// adjustment is attached carrying the prior total in place of the current
// one. The marketplace vendor reports the running month incrementally, so a
// drop at the tail means the month is not fully reported yet. The adjustment
// never mutates the combined totals; it is a parallel, preferred-for-display
// value.
func Combine(profitwell, atlassian []domain.MonthlyBreakdown) []domain.CombinedMonthlyBreakdown {
	sortedProfitwell := sortByMonth(profitwell)
	sortedAtlassian := sortByMonth(atlassian)

	atlassianByMonth := make(map[domain.Month]domain.MonthlyBreakdown, len(sortedAtlassian))
	for _, record := range sortedAtlassian {
		atlassianByMonth[record.Date] = record
	}

	combined := make([]domain.CombinedMonthlyBreakdown, 0, len(sortedProfitwell)+len(sortedAtlassian))

	profitwellMonths := make(map[domain.Month]bool, len(sortedProfitwell))
	for _, pw := range sortedProfitwell {
		profitwellMonths[pw.Date] = true

		atl, ok := atlassianByMonth[pw.Date]
		if !ok {
			atl = domain.ZeroBreakdown(pw.Date)
		}
		combined = append(combined, combineRecords(pw, atl))
	}

	// Cover months present only in the marketplace source
	for _, atl := range sortedAtlassian {
		if !profitwellMonths[atl.Date] {
			combined = append(combined, combineRecords(domain.ZeroBreakdown(atl.Date), atl))
		}
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Date.Before(combined[j].Date)
	})

	applyAdjustment(combined, sortedAtlassian)

	return combined
}

// combineRecords produces the field-wise sum of the two sources for one month.
// ARR is derived from the combined total rather than summed independently;
// the result is identical since each source's ARR is total_mrr x 12.
func combineRecords(pw, atl domain.MonthlyBreakdown) domain.CombinedMonthlyBreakdown {
	totalMRR := pw.TotalMRR.Add(atl.TotalMRR)

	return domain.CombinedMonthlyBreakdown{
		Date:       pw.Date,
		Profitwell: pw,
		Atlassian:  atl,
		Combined: domain.MonthlyBreakdown{
			Date:            pw.Date,
			NewRevenue:      pw.NewRevenue.Add(atl.NewRevenue),
			Reactivations:   pw.Reactivations.Add(atl.Reactivations),
			Upgrades:        pw.Upgrades.Add(atl.Upgrades),
			Downgrades:      pw.Downgrades.Add(atl.Downgrades),
			VoluntaryChurn:  pw.VoluntaryChurn.Add(atl.VoluntaryChurn),
			DelinquentChurn: pw.DelinquentChurn.Add(atl.DelinquentChurn),
			Existing:        pw.Existing.Add(atl.Existing),
			TotalMRR:        totalMRR,
			ARR:             totalMRR.Mul(twelve),
		},
	}
}

// applyAdjustment attaches the trailing-report-lag correction to the last
// merged record when the marketplace source's previous total (by position in
// its own sorted series, not by calendar lookup) exceeds its current one.
func applyAdjustment(combined []domain.CombinedMonthlyBreakdown, sortedAtlassian []domain.MonthlyBreakdown) {
	if len(combined) == 0 || len(sortedAtlassian) < 2 {
		return
	}

	latest := &combined[len(combined)-1]
	previous := sortedAtlassian[len(sortedAtlassian)-2]

	if !previous.TotalMRR.GreaterThan(latest.Atlassian.TotalMRR) {
		return
	}

	latest.AdjustedMRR = &domain.AdjustedMRR{
		Profitwell: latest.Profitwell.TotalMRR,
		Atlassian:  previous.TotalMRR,
		Total:      latest.Profitwell.TotalMRR.Add(previous.TotalMRR),
		Note: fmt.Sprintf("Using %s Atlassian MRR ($%s) instead of current month ($%s) due to incremental reporting",
			previous.Date, previous.TotalMRR.StringFixed(2), latest.Atlassian.TotalMRR.StringFixed(2)),
	}
}

// sortByMonth returns a copy of the series sorted ascending by month key
func sortByMonth(series []domain.MonthlyBreakdown) []domain.MonthlyBreakdown {
	sorted := make([]domain.MonthlyBreakdown, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
