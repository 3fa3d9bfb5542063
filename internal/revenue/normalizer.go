package revenue

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/logger"
)

// saleDateLayout is the date format used by marketplace transaction exports
const saleDateLayout = "2006-01-02"

var twelve = decimal.NewFromInt(12)

// BuildMonthlyRevenue converts raw marketplace billing transactions into a
// per-customer-per-month revenue table.
//
// Annual transactions are spread evenly across the twelve consecutive months
// starting at the sale month. Monthly transactions contribute their full
// price to the sale month, except Upgrades which contribute the delta over
// the prior price. Transactions with unparseable sale dates are skipped with
// a warning rather than failing the whole batch.
func BuildMonthlyRevenue(transactions []domain.RawTransaction) domain.MonthlyRevenueTable {
	table := domain.MonthlyRevenueTable{}

	for _, txn := range transactions {
		saleDate, err := time.Parse(saleDateLayout, txn.SaleDate)
		if err != nil {
			logger.Warn("skipping transaction with unparseable sale date",
				zap.String("sale_date", txn.SaleDate),
				zap.String("customer", txn.Customer))
			continue
		}
		saleMonth := domain.MonthOf(saleDate)

		if txn.BillingPeriod == domain.BillingPeriodAnnual {
			// Spread annual payment across 12 months starting at the sale month
			monthlyAmount := txn.PurchasePrice.Div(twelve)
			for i := 0; i < 12; i++ {
				table.Add(saleMonth.Add(i), txn.Customer, monthlyAmount)
			}
			continue
		}

		// Monthly billing: Upgrades contribute the delta over the prior price.
		// A negative delta here means inconsistent vendor data; it is recorded
		// as-is rather than corrected.
		amount := txn.PurchasePrice
		if txn.SaleType == domain.SaleTypeUpgrade {
			amount = txn.PurchasePrice.Sub(txn.OldPurchasePrice)
		}
		table.Add(saleMonth, txn.Customer, amount)
	}

	return table
}
