package reconcile

import (
	"github.com/dmarkovic/racun-sync/internal/domain"
)

// ParseReceiptRow converts a remote receipts row into a local Receipt.
// Returns nil when the row has no parseable id; every other malformed or
// missing field degrades to its default instead of failing the row.
func (p *Parser) ParseReceiptRow(row Row) *domain.Receipt {
	id, ok := coerceID(row["id"])
	if !ok {
		p.rejectRow(KindReceipt, row)
		return nil
	}

	date := p.coerceDate(row["date"], p.now())

	r := &domain.Receipt{
		ID:           id,
		MerchantName: stringOr(row["vendor"], domain.UnknownMerchant),
		PIB:          stringOr(row["pib"], ""),
		Date:         date,
		Time:         date.Format("15:04"),
		TotalAmount:  floatOr(row["total_amount"], 0),
		Category:     domain.NormalizeReceiptCategory(stringOr(row["category"], "")),
		// Creation and update timestamps fall back to the transaction
		// date independently, not to each other.
		CreatedAt:  p.coerceDate(row["created_at"], date),
		UpdatedAt:  p.coerceDate(row["updated_at"], date),
		SyncStatus: domain.SyncStatusSynced,
	}

	if vat, ok := coerceFloat(row["vat_amount"]); ok {
		r.VATAmount = &vat
	}
	if items := parseReceiptItems(row["items"]); len(items) > 0 {
		r.Items = items
	}
	r.Notes = optString(row["notes"])
	r.QRData = optString(row["qr_data"])
	r.ImageURL = optString(row["image_url"])
	r.PDFURL = optString(row["pdf_url"])

	return r
}
