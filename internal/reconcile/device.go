package reconcile

import (
	"github.com/dmarkovic/racun-sync/internal/domain"
)

// ParseDeviceRow converts a remote devices row into a local Device.
// Returns nil when the row has no parseable id.
func (p *Parser) ParseDeviceRow(row Row) *domain.Device {
	id, ok := coerceID(row["id"])
	if !ok {
		p.rejectRow(KindDevice, row)
		return nil
	}

	purchase := p.coerceDate(row["purchase_date"], p.now())

	d := &domain.Device{
		ID:             id,
		Brand:          stringOr(row["brand"], domain.UnknownProvider),
		Category:       domain.NormalizeDeviceCategory(stringOr(row["category"], "")),
		PurchaseDate:   purchase,
		WarrantyMonths: int(floatOr(row["warranty_months"], 0)),
		WarrantyUntil:  p.coerceDate(row["warranty_until"], purchase),
		Status:         stringOr(row["status"], domain.DeviceStatusActive),
		// Reminders arrive through the reminders subsystem, never from
		// the remote row.
		Reminders:  []domain.Reminder{},
		CreatedAt:  p.coerceDate(row["created_at"], purchase),
		UpdatedAt:  p.coerceDate(row["updated_at"], purchase),
		SyncStatus: domain.SyncStatusSynced,
	}

	d.SerialNumber = optString(row["serial_number"])
	d.ImageURL = optString(row["image_url"])
	d.WarrantyTerms = optString(row["warranty_terms"])
	d.ServiceCenterName = optString(row["service_center_name"])
	d.ServiceCenterAddress = optString(row["service_center_address"])
	d.ServiceCenterPhone = optString(row["service_center_phone"])
	d.ServiceCenterHours = optString(row["service_center_hours"])

	if atts := parseAttachments(row["attachments"]); len(atts) > 0 {
		d.Attachments = atts
	}
	// A receipt link is only attached when it parses to a finite number;
	// it acts as a foreign key into local storage.
	if rid, ok := coerceID(row["receipt_id"]); ok {
		d.ReceiptID = &rid
	}

	return d
}

// parseAttachments filters an attachment list down to its string entries.
// Empty after filtering is treated as absent.
func parseAttachments(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
