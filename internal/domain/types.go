package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// monthLayout is the calendar month key format shared by every source (YYYY-MM)
const monthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Month represents a calendar month key in YYYY-MM format.
// It is the alignment key for every per-month structure in the system.
type Month string

// ParseMonth parses a YYYY-MM string into a Month
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return "", fmt.Errorf("invalid month key %q: want YYYY-MM", s)
	}
	return Month(s), nil
}

// MonthOf returns the Month containing t
func MonthOf(t time.Time) Month {
	return Month(t.Format(monthLayout))
}

// Valid checks if the month key is well-formed
func (m Month) Valid() bool {
	return monthPattern.MatchString(string(m))
}

// Time returns the first instant of the month in UTC
func (m Month) Time() time.Time {
	t, _ := time.Parse(monthLayout, string(m))
	return t
}

// Add returns the month n calendar months after m (n may be negative).
// time.Date normalizes out-of-range months, so no overflow handling is needed.
func (m Month) Add(n int) Month {
	t := m.Time()
	return Month(time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC).Format(monthLayout))
}

// Before reports whether m is chronologically before other.
// YYYY-MM keys sort lexicographically, so string comparison is sufficient.
func (m Month) Before(other Month) bool {
	return string(m) < string(other)
}

// SaleType represents the type of a marketplace billing event
type SaleType string

const (
	SaleTypeNew       SaleType = "New"
	SaleTypeRenewal   SaleType = "Renewal"
	SaleTypeUpgrade   SaleType = "Upgrade"
	SaleTypeDowngrade SaleType = "Downgrade"
)

// BillingPeriod represents the billing cadence of a marketplace transaction
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "Monthly"
	BillingPeriodAnnual  BillingPeriod = "Annual"
)

// RawTransaction represents one marketplace billing event, verbatim from the
// vendor. SaleDate stays a string so a malformed date can be skipped during
// normalization instead of failing the whole batch at decode time.
type RawTransaction struct {
	Customer         string          `json:"customer"`
	SaleDate         string          `json:"saleDate"` // YYYY-MM-DD
	SaleType         SaleType        `json:"saleType"`
	BillingPeriod    BillingPeriod   `json:"billingPeriod"`
	PurchasePrice    decimal.Decimal `json:"purchasePrice"`
	OldPurchasePrice decimal.Decimal `json:"oldPurchasePrice,omitempty"` // present for Upgrade/Downgrade
}

// MonthlyRevenueTable maps month key -> customer -> recognized revenue for
// that month. Built once per normalization pass; accumulation is additive.
type MonthlyRevenueTable map[Month]map[string]decimal.Decimal

// Add accumulates amount into the customer's total for the given month
func (t MonthlyRevenueTable) Add(month Month, customer string, amount decimal.Decimal) {
	customers, ok := t[month]
	if !ok {
		customers = make(map[string]decimal.Decimal)
		t[month] = customers
	}
	customers[customer] = customers[customer].Add(amount)
}

// Customers returns the customer-revenue map for a month.
// A missing month yields an empty map, never an error.
func (t MonthlyRevenueTable) Customers(month Month) map[string]decimal.Decimal {
	if customers, ok := t[month]; ok {
		return customers
	}
	return map[string]decimal.Decimal{}
}

// MonthlyBreakdown is one month of MRR movement in the shared schema both
// revenue sources conform to. Churn fields are signed negative.
type MonthlyBreakdown struct {
	Date            Month           `json:"date"`
	NewRevenue      decimal.Decimal `json:"new_revenue"`
	Reactivations   decimal.Decimal `json:"reactivations"`
	Upgrades        decimal.Decimal `json:"upgrades"`
	Downgrades      decimal.Decimal `json:"downgrades"`
	VoluntaryChurn  decimal.Decimal `json:"voluntary_churn"`
	DelinquentChurn decimal.Decimal `json:"delinquent_churn"`
	Existing        decimal.Decimal `json:"existing"`
	TotalMRR        decimal.Decimal `json:"total_mrr"`
	ARR             decimal.Decimal `json:"arr"`
}

// ZeroBreakdown returns a zero-filled breakdown for a month. Used when one
// source has no record for a month present in the other.
func ZeroBreakdown(month Month) MonthlyBreakdown {
	return MonthlyBreakdown{Date: month}
}

// AdjustedMRR carries the corrected current-period total attached when the
// marketplace source's latest month is known to be under-reported. It never
// replaces the raw combined totals; it is a parallel, preferred-for-display
// value.
type AdjustedMRR struct {
	Profitwell decimal.Decimal `json:"profitwell"`
	Atlassian  decimal.Decimal `json:"atlassian"`
	Total      decimal.Decimal `json:"total"`
	Note       string          `json:"note"`
}

// CombinedMonthlyBreakdown merges the two per-source breakdowns for one month
type CombinedMonthlyBreakdown struct {
	Date        Month            `json:"date"`
	Profitwell  MonthlyBreakdown `json:"profitwell"`
	Atlassian   MonthlyBreakdown `json:"atlassian"`
	Combined    MonthlyBreakdown `json:"combined"`
	AdjustedMRR *AdjustedMRR     `json:"adjustedMRR,omitempty"`
}

// EffectiveTotalMRR returns the adjusted total when present, else the raw
// combined total
func (c *CombinedMonthlyBreakdown) EffectiveTotalMRR() decimal.Decimal {
	if c.AdjustedMRR != nil {
		return c.AdjustedMRR.Total
	}
	return c.Combined.TotalMRR
}

// SummaryMetrics is derived on demand from the latest two combined records
type SummaryMetrics struct {
	CurrentMRR           decimal.Decimal `json:"currentMRR"`
	CurrentARR           decimal.Decimal `json:"currentARR"`
	MonthlyGrowth        decimal.Decimal `json:"monthlyGrowth"` // percent
	NewRevenue           decimal.Decimal `json:"newRevenue"`
	ChurnRevenue         decimal.Decimal `json:"churnRevenue"`
	NetGrowth            decimal.Decimal `json:"netGrowth"`
	ProfitwellMRR        decimal.Decimal `json:"profitwellMRR"`
	AtlassianMRR         decimal.Decimal `json:"atlassianMRR"`
	ProfitwellPercentage decimal.Decimal `json:"profitwellPercentage"`
	AtlassianPercentage  decimal.Decimal `json:"atlassianPercentage"`
	AdjustmentNote       string          `json:"adjustmentNote,omitempty"`
	RawMRR               decimal.Decimal `json:"rawMRR"`
	IsAdjusted           bool            `json:"isAdjusted"`
}
