package profitwell

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

// MonthlyDataPoint is one month of one metric series
type MonthlyDataPoint struct {
	Date  domain.Month    `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// MonthlyMetricsData holds the parallel per-metric series from the monthly
// metrics endpoint. All series are index-aligned on the same month axis.
// The endpoint returns many more series; only the ones consumed here are
// decoded.
type MonthlyMetricsData struct {
	RecurringRevenue              []MonthlyDataPoint `json:"recurring_revenue"`
	NewRecurringRevenue           []MonthlyDataPoint `json:"new_recurring_revenue"`
	ExistingRecurringRevenue      []MonthlyDataPoint `json:"existing_recurring_revenue"`
	ChurnedRevenueCancellations   []MonthlyDataPoint `json:"churned_recurring_revenue_cancellations"`
	ChurnedRevenueDelinquent      []MonthlyDataPoint `json:"churned_recurring_revenue_delinquent"`
	UpgradedRecurringRevenue      []MonthlyDataPoint `json:"upgraded_recurring_revenue"`
	DowngradedRecurringRevenue    []MonthlyDataPoint `json:"downgraded_recurring_revenue"`
	ReactivatedRecurringRevenue   []MonthlyDataPoint `json:"reactivated_recurring_revenue"`
	ActiveCustomers               []MonthlyDataPoint `json:"active_customers"`
	CustomersChurnRate            []MonthlyDataPoint `json:"customers_churn_rate"`
}

// MonthlyMetricsResponse is the raw monthly metrics payload
type MonthlyMetricsResponse struct {
	Data MonthlyMetricsData `json:"data"`
}

// CustomerStatus enumerates the vendor's customer lifecycle states
type CustomerStatus string

const (
	StatusActive             CustomerStatus = "active"
	StatusNoHistory          CustomerStatus = "no_history"
	StatusChurnedVoluntary   CustomerStatus = "churned_voluntary"
	StatusChurnedDelinquent  CustomerStatus = "churned_delinquent"
	StatusChurnedTrial       CustomerStatus = "churned_trial"
)

// Customer is one row from the customers endpoint
type Customer struct {
	CustomerID      string         `json:"customer_id"`
	Email           *string        `json:"email"`
	FirstName       *string        `json:"first_name"`
	LastName        *string        `json:"last_name"`
	MRRCents        int64          `json:"mrr_cents"`
	Plans           []string       `json:"plans"`
	Status          CustomerStatus `json:"status"`
	CreatedOn       string         `json:"created_on"`
	ActivatedOn     *string        `json:"activated_on"`
	ChurnedOn       *string        `json:"churned_on"`
	UpdatedOn       string         `json:"updated_on"`
	TotalSpendCents int64          `json:"total_spend_cents"`
}

// CustomerQuery holds optional filters for the customers endpoint
type CustomerQuery struct {
	Page          int
	PerPage       int
	Status        string
	CreatedAfter  string // YYYY-MM-DD
	CreatedBefore string // YYYY-MM-DD
}

// CalculatedMRR aggregates MRR figures from customer rows
type CalculatedMRR struct {
	CurrentMRRCents       int64           `json:"current_mrr_cents"`
	ActiveCustomers       int             `json:"active_customers"`
	ChurnedCustomers      int             `json:"churned_customers"`
	TotalCustomers        int             `json:"total_customers"`
	AverageMRRPerCustomer decimal.Decimal `json:"average_mrr_per_customer"`
}

// CalculatedChurn splits churn counts by reason
type CalculatedChurn struct {
	ChurnRate        decimal.Decimal `json:"churn_rate"` // percent
	ChurnedThisMonth int             `json:"churned_this_month"`
	VoluntaryChurn   int             `json:"voluntary_churn"`
	DelinquentChurn  int             `json:"delinquent_churn"`
	TrialChurn       int             `json:"trial_churn"`
}

// CalculatedRevenue aggregates lifetime spend figures from customer rows
type CalculatedRevenue struct {
	TotalRevenueCents    int64           `json:"total_revenue_cents"`
	AverageCustomerValue decimal.Decimal `json:"average_customer_value"`
	TotalActiveMRR       int64           `json:"total_active_mrr"`
	TotalChurnedRevenue  int64           `json:"total_churned_revenue"`
}

// PlanMetrics holds per-plan customer and MRR aggregates
type PlanMetrics struct {
	CustomerCount int             `json:"customer_count"`
	TotalMRRCents int64           `json:"total_mrr_cents"`
	ChurnRate     decimal.Decimal `json:"churn_rate"` // percent
}

// ProductMetrics maps plan name to its aggregates
type ProductMetrics map[string]PlanMetrics

// DashboardMetrics is the customer-analytics bundle computed from customer rows
type DashboardMetrics struct {
	Customers         []Customer        `json:"customers"`
	CalculatedMRR     CalculatedMRR     `json:"calculated_mrr"`
	CalculatedChurn   CalculatedChurn   `json:"calculated_churn"`
	CalculatedRevenue CalculatedRevenue `json:"calculated_revenue"`
	ProductMetrics    ProductMetrics    `json:"product_metrics"`
	LastUpdated       string            `json:"last_updated"`
}

// IsChurned reports whether the customer left, for any reason
func (c Customer) IsChurned() bool {
	switch c.Status {
	case StatusChurnedVoluntary, StatusChurnedDelinquent, StatusChurnedTrial:
		return true
	}
	return false
}

// IsActive reports whether the customer currently contributes MRR
func (c Customer) IsActive() bool {
	return !c.IsChurned() && c.Status != StatusNoHistory
}
