package revenue

import (
	"github.com/shopspring/decimal"
)

// Movement holds the classifier output for one pair of adjacent months:
// aggregate totals per movement category plus per-customer detail maps.
type Movement struct {
	NewRevenue       decimal.Decimal
	ExpansionRevenue decimal.Decimal
	RetainedRevenue  decimal.Decimal
	ChurnedRevenue   decimal.Decimal

	NewCustomers      map[string]decimal.Decimal
	ExpandedCustomers map[string]decimal.Decimal
	RetainedCustomers map[string]decimal.Decimal
	ChurnedCustomers  map[string]decimal.Decimal
}

// ClassifyMovement classifies the month-over-month revenue delta per customer.
//
// A customer absent from the previous month is new. A customer present in
// both months retains min(current, previous); any excess over the previous
// amount counts as expansion. A customer absent from the current month
// churned with their full previous amount.
//
// Contraction has no bucket of its own: a shrinking customer simply retains
// the smaller current amount. This mirrors the marketplace source, which
// cannot report downgrades separately.
func ClassifyMovement(currentMonth, previousMonth map[string]decimal.Decimal) Movement {
	m := Movement{
		NewCustomers:      map[string]decimal.Decimal{},
		ExpandedCustomers: map[string]decimal.Decimal{},
		RetainedCustomers: map[string]decimal.Decimal{},
		ChurnedCustomers:  map[string]decimal.Decimal{},
	}

	for customer, amount := range currentMonth {
		previous, existed := previousMonth[customer]
		if !existed {
			m.NewRevenue = m.NewRevenue.Add(amount)
			m.NewCustomers[customer] = amount
			continue
		}

		if amount.GreaterThan(previous) {
			excess := amount.Sub(previous)
			m.ExpansionRevenue = m.ExpansionRevenue.Add(excess)
			m.ExpandedCustomers[customer] = excess
		}

		retained := decimal.Min(amount, previous)
		m.RetainedRevenue = m.RetainedRevenue.Add(retained)
		m.RetainedCustomers[customer] = retained
	}

	for customer, amount := range previousMonth {
		if _, stillPresent := currentMonth[customer]; !stillPresent {
			m.ChurnedRevenue = m.ChurnedRevenue.Add(amount)
			m.ChurnedCustomers[customer] = amount
		}
	}

	return m
}
