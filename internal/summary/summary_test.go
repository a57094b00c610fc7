package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarkovic/racun-sync/internal/domain"
)

func receipt(id int64, date string, amount float64, category string) *domain.Receipt {
	d, _ := time.Parse("2006-01-02", date)
	return &domain.Receipt{ID: id, Date: d, TotalAmount: amount, Category: category}
}

func TestMonthly(t *testing.T) {
	receipts := []*domain.Receipt{
		receipt(1, "2024-03-01", 100.10, domain.CategoryGroceries),
		receipt(2, "2024-03-15", 0.20, domain.CategoryGroceries),
		receipt(3, "2024-03-20", 50, domain.CategoryFuel),
		receipt(4, "2024-04-01", 10, domain.CategoryOther),
	}

	got := Monthly(receipts)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}

	march := got[0]
	if march.Month != "2024-03" {
		t.Fatalf("months not sorted ascending: first is %s", march.Month)
	}
	if march.Receipts != 3 {
		t.Errorf("march receipts = %d, want 3", march.Receipts)
	}
	// 100.10 + 0.20 + 50 must be exactly 150.30; float addition would
	// give 150.29999... here.
	if !march.Total.Equal(decimal.RequireFromString("150.3")) {
		t.Errorf("march total = %s, want 150.3", march.Total)
	}
	if !march.ByCategory[domain.CategoryGroceries].Equal(decimal.RequireFromString("100.3")) {
		t.Errorf("groceries total = %s, want 100.3", march.ByCategory[domain.CategoryGroceries])
	}

	april := got[1]
	if april.Month != "2024-04" || !april.Total.Equal(decimal.NewFromInt(10)) {
		t.Errorf("april = %+v, want total 10", april)
	}
}

func TestMonthly_Empty(t *testing.T) {
	if got := Monthly(nil); len(got) != 0 {
		t.Errorf("Monthly(nil) = %v, want empty", got)
	}
}

func TestBillTotals(t *testing.T) {
	bills := []*domain.HouseholdBill{
		{ID: 1, BillType: domain.BillTypeElectricity, Amount: 4850.20},
		{ID: 2, BillType: domain.BillTypeElectricity, Amount: 5120.80},
		// Raw remote value that never went through normalization.
		{ID: 3, BillType: "hydro", Amount: 100},
	}

	got := BillTotals(bills)
	if !got[domain.BillTypeElectricity].Equal(decimal.RequireFromString("9971")) {
		t.Errorf("electricity total = %s, want 9971", got[domain.BillTypeElectricity])
	}
	if !got["hydro"].Equal(decimal.NewFromInt(100)) {
		t.Errorf("raw bill type should aggregate under its own key, got %v", got)
	}
}
