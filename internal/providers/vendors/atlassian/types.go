package atlassian

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/revenue-dashboard/internal/domain"
)

// PurchaseDetails carries the billing fields of one marketplace sale
type PurchaseDetails struct {
	SaleDate         string               `json:"saleDate"` // YYYY-MM-DD
	SaleType         domain.SaleType      `json:"saleType"`
	BillingPeriod    domain.BillingPeriod `json:"billingPeriod"`
	PurchasePrice    decimal.Decimal      `json:"purchasePrice"`
	OldPurchasePrice decimal.Decimal      `json:"oldPurchasePrice,omitempty"`
}

// Transaction is one row of the marketplace sales transaction export.
// The cloud instance ID serves as the customer identity.
type Transaction struct {
	CloudID         string          `json:"cloudId"`
	PurchaseDetails PurchaseDetails `json:"purchaseDetails"`
}

// ChurnEvent is one row of the marketplace churn details export
type ChurnEvent struct {
	CloudID           string          `json:"cloudId"`
	ChurnDate         string          `json:"churnDate"` // YYYY-MM-DD
	ChurnReason       string          `json:"churnReason,omitempty"`
	LastPurchasePrice decimal.Decimal `json:"lastPurchasePrice"`
}

// Raw converts the transaction into the normalizer's flat input shape
func (t Transaction) Raw() domain.RawTransaction {
	return domain.RawTransaction{
		Customer:         t.CloudID,
		SaleDate:         t.PurchaseDetails.SaleDate,
		SaleType:         t.PurchaseDetails.SaleType,
		BillingPeriod:    t.PurchaseDetails.BillingPeriod,
		PurchasePrice:    t.PurchaseDetails.PurchasePrice,
		OldPurchasePrice: t.PurchaseDetails.OldPurchasePrice,
	}
}
