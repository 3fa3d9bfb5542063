package revenue

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

// MonthlyData extends the shared breakdown schema with the classifier's
// per-customer detail maps for one month.
type MonthlyData struct {
	domain.MonthlyBreakdown

	NewCustomers         map[string]decimal.Decimal `json:"new_customers"`
	ReactivatedCustomers map[string]decimal.Decimal `json:"reactivated_customers"`
	UpgradedCustomers    map[string]decimal.Decimal `json:"upgraded_customers"`
	DowngradedCustomers  map[string]decimal.Decimal `json:"downgraded_customers"`
	ChurnedCustomers     map[string]decimal.Decimal `json:"churned_customers"`
	RetainedCustomers    map[string]decimal.Decimal `json:"retained_customers"`
}

// AssembleBreakdowns walks a rolling window of the given size ending at the
// month containing now, classifying each month against its predecessor, and
// emits one shared-schema breakdown per month, oldest first.
//
// Months absent from the table are treated as empty: a month with no
// transactions yields zero movement, not an error.
func AssembleBreakdowns(table domain.MonthlyRevenueTable, months int, now time.Time) []domain.MonthlyBreakdown {
	breakdowns := make([]domain.MonthlyBreakdown, 0, months)
	currentMonth := domain.MonthOf(now)

	for i := months - 1; i >= 0; i-- {
		target := currentMonth.Add(-i)
		movement := ClassifyMovement(table.Customers(target), table.Customers(target.Add(-1)))
		breakdowns = append(breakdowns, breakdownFromMovement(target, movement))
	}

	return breakdowns
}

// AssembleMonthlyData is AssembleBreakdowns plus the per-customer detail maps
func AssembleMonthlyData(table domain.MonthlyRevenueTable, months int, now time.Time) []MonthlyData {
	data := make([]MonthlyData, 0, months)
	currentMonth := domain.MonthOf(now)

	for i := months - 1; i >= 0; i-- {
		target := currentMonth.Add(-i)
		movement := ClassifyMovement(table.Customers(target), table.Customers(target.Add(-1)))
		data = append(data, MonthlyData{
			MonthlyBreakdown: breakdownFromMovement(target, movement),
			NewCustomers:     movement.NewCustomers,
			// The marketplace source cannot distinguish a returning churned
			// customer from a new one, nor detect contraction, so these two
			// maps are always empty for it.
			ReactivatedCustomers: map[string]decimal.Decimal{},
			UpgradedCustomers:    movement.ExpandedCustomers,
			DowngradedCustomers:  map[string]decimal.Decimal{},
			ChurnedCustomers:     movement.ChurnedCustomers,
			RetainedCustomers:    movement.RetainedCustomers,
		})
	}

	return data
}

// breakdownFromMovement maps classifier output into the shared schema.
//
// TotalMRR is new + upgrades + existing. Churn is deliberately excluded from
// this sum: retained revenue already reflects the post-churn state of
// surviving customers, so subtracting churn again would double-count it.
func breakdownFromMovement(month domain.Month, m Movement) domain.MonthlyBreakdown {
	totalMRR := m.NewRevenue.Add(m.ExpansionRevenue).Add(m.RetainedRevenue)

	return domain.MonthlyBreakdown{
		Date:            month,
		NewRevenue:      m.NewRevenue,
		Reactivations:   decimal.Zero,
		Upgrades:        m.ExpansionRevenue,
		Downgrades:      decimal.Zero,
		VoluntaryChurn:  m.ChurnedRevenue.Neg(),
		DelinquentChurn: decimal.Zero, // the marketplace source has no delinquency concept
		Existing:        m.RetainedRevenue,
		TotalMRR:        totalMRR,
		ARR:             totalMRR.Mul(twelve),
	}
}
