package mercury

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

// TransactionKind distinguishes money leaving from money arriving
type TransactionKind string

const (
	KindDebit  TransactionKind = "debit"
	KindCredit TransactionKind = "credit"
)

// Account is one bank account from the accounts endpoint
type Account struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	Currency         string          `json:"currency"`
}

// Transaction is one bank transaction
type Transaction struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"accountId"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Description      string          `json:"description"`
	CounterpartyName string          `json:"counterpartyName,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	PostedAt         string          `json:"postedAt"`
	Status           string          `json:"status"`
	Kind             TransactionKind `json:"kind"`
	Note             string          `json:"note,omitempty"`
}

// TransactionQuery holds the paging and date-range filters for the
// transactions endpoint. Results always come most recent first.
type TransactionQuery struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Limit     int
	Offset    int
}

// accountsResponse is the wire envelope of the accounts endpoint
type accountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// transactionsResponse is the wire envelope of the transactions endpoint
type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// BankBalance is one account's balance snapshot for the dashboard
type BankBalance struct {
	Source      string          `json:"source"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastUpdated string          `json:"lastUpdated"`
}

// BurnRateMetrics is one month of debit-side spend, broken down by vendor
// and spend category
type BurnRateMetrics struct {
	Period                 domain.Month               `json:"period"`
	TotalBurn              decimal.Decimal            `json:"totalBurn"`
	VendorBreakdown        map[string]decimal.Decimal `json:"vendorBreakdown"`
	CategoryBreakdown      map[string]decimal.Decimal `json:"categoryBreakdown"`
	TransactionCount       int                        `json:"transactionCount"`
	AverageTransactionSize decimal.Decimal            `json:"averageTransactionSize"`
}
