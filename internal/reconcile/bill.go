package reconcile

import (
	"github.com/dmarkovic/racun-sync/internal/domain"
)

// ParseHouseholdBillRow converts a remote household_bills row into a local
// HouseholdBill. Returns nil when the row has no parseable id.
//
// BillType and Status are cast from the remote value with a default when
// missing; they do not go through vocabulary normalization the way receipt
// and device categories do, so unknown values pass through verbatim.
func (p *Parser) ParseHouseholdBillRow(row Row) *domain.HouseholdBill {
	id, ok := coerceID(row["id"])
	if !ok {
		p.rejectRow(KindBill, row)
		return nil
	}

	due := p.coerceDate(row["due_date"], p.now())

	b := &domain.HouseholdBill{
		ID:       id,
		BillType: stringOr(row["bill_type"], domain.BillTypeOther),
		Status:   stringOr(row["status"], domain.BillStatusPending),
		Provider: stringOr(row["provider"], domain.UnknownProvider),
		Amount:   floatOr(row["amount"], 0),
		DueDate:  due,
		// Billing period bounds each fall back to the due date
		// independently.
		PeriodStart: p.coerceDate(row["period_start"], due),
		PeriodEnd:   p.coerceDate(row["period_end"], due),
		CreatedAt:   p.coerceDate(row["created_at"], due),
		UpdatedAt:   p.coerceDate(row["updated_at"], due),
		SyncStatus:  domain.SyncStatusSynced,
	}

	b.AccountNumber = optString(row["account_number"])
	// The payment date is only attached when the source field is present;
	// a bill that was never paid carries no payment date at all. When the
	// field is present but unparseable the usual now-fallback applies.
	if _, present := row["payment_date"]; present && row["payment_date"] != nil {
		paid := p.coerceDate(row["payment_date"], p.now())
		b.PaidDate = &paid
	}
	b.Notes = optString(row["notes"])
	b.Consumption = parseConsumption(row["consumption"])

	return b
}
