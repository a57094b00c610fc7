// Package summary computes spending aggregates over locally stored
// entities. Amounts are summed as decimals so a month of float receipt
// totals does not drift.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dmarkovic/racun-sync/internal/domain"
)

// MonthSummary aggregates receipt spending for one calendar month.
type MonthSummary struct {
	// Month in YYYY-MM form.
	Month string

	Total      decimal.Decimal
	Receipts   int
	ByCategory map[string]decimal.Decimal
}

// Monthly groups receipts by the calendar month of their transaction date
// and totals them, overall and per category. Months come back sorted
// ascending.
func Monthly(receipts []*domain.Receipt) []MonthSummary {
	byMonth := make(map[string]*MonthSummary)

	for _, r := range receipts {
		month := r.Date.Format("2006-01")
		ms, ok := byMonth[month]
		if !ok {
			ms = &MonthSummary{
				Month:      month,
				ByCategory: make(map[string]decimal.Decimal),
			}
			byMonth[month] = ms
		}

		amount := decimal.NewFromFloat(r.TotalAmount)
		ms.Total = ms.Total.Add(amount)
		ms.ByCategory[r.Category] = ms.ByCategory[r.Category].Add(amount)
		ms.Receipts++
	}

	out := make([]MonthSummary, 0, len(byMonth))
	for _, ms := range byMonth {
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// BillTotals sums household bill amounts per bill type. Only known
// vocabulary values and whatever raw strings the remote wrote appear as
// keys; bill types are not normalized at parse time.
func BillTotals(bills []*domain.HouseholdBill) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, b := range bills {
		totals[b.BillType] = totals[b.BillType].Add(decimal.NewFromFloat(b.Amount))
	}
	return totals
}
