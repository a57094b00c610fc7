package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/dmarkovic/racun-sync/internal/domain"
)

// Storage records mirror the domain entities one to one. Nested structures
// (line items, reminders, consumption) are kept as JSON columns; they are
// only ever read and written whole. Creation and update timestamps come
// from the remote reconciliation, so gorm's automatic tracking is disabled
// on them — a local upsert must not clobber remote timestamps.

type ReceiptRecord struct {
	ID           int64     `gorm:"primaryKey"`
	MerchantName string    `gorm:"size:128;not null"`
	PIB          string    `gorm:"size:32"`
	Date         time.Time `gorm:"index"`
	TimeOfDay    string    `gorm:"size:8"`
	TotalAmount  float64
	Category     string `gorm:"size:32;index"`
	VATAmount    *float64
	Items        datatypes.JSON
	Notes        *string   `gorm:"type:text"`
	QRData       *string   `gorm:"column:qr_data;type:text"`
	ImageURL     *string   `gorm:"size:512"`
	PDFURL       *string   `gorm:"column:pdf_url;size:512"`
	SyncStatus   string    `gorm:"size:16;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"index;autoUpdateTime:false"`
}

func (ReceiptRecord) TableName() string { return "receipts" }

type DeviceRecord struct {
	ID             int64     `gorm:"primaryKey"`
	Brand          string    `gorm:"size:128;not null"`
	Category       string    `gorm:"size:32;index"`
	PurchaseDate   time.Time `gorm:"index"`
	WarrantyMonths int
	WarrantyUntil  time.Time `gorm:"index"`
	Status         string    `gorm:"size:32;index"`
	Reminders      datatypes.JSON
	SerialNumber   *string `gorm:"size:128"`
	ImageURL       *string `gorm:"size:512"`
	WarrantyTerms  *string `gorm:"type:text"`

	ServiceCenterName    *string `gorm:"size:128"`
	ServiceCenterAddress *string `gorm:"size:256"`
	ServiceCenterPhone   *string `gorm:"size:64"`
	ServiceCenterHours   *string `gorm:"size:128"`

	Attachments datatypes.JSON
	ReceiptID   *int64 `gorm:"index"`

	SyncStatus string    `gorm:"size:16;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"index;autoUpdateTime:false"`
}

func (DeviceRecord) TableName() string { return "devices" }

type BillRecord struct {
	ID       int64  `gorm:"primaryKey"`
	BillType string `gorm:"size:32;index"`
	Status   string `gorm:"size:32;index"`
	Provider string `gorm:"size:128;not null"`
	Amount   float64

	DueDate     time.Time `gorm:"index"`
	PeriodStart time.Time
	PeriodEnd   time.Time

	AccountNumber *string `gorm:"size:64"`
	PaidDate      *time.Time
	Notes         *string `gorm:"type:text"`
	Consumption   datatypes.JSON

	SyncStatus string    `gorm:"size:16;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"index;autoUpdateTime:false"`
}

func (BillRecord) TableName() string { return "household_bills" }

func toReceiptRecord(r *domain.Receipt) (*ReceiptRecord, error) {
	rec := &ReceiptRecord{
		ID:           r.ID,
		MerchantName: r.MerchantName,
		PIB:          r.PIB,
		Date:         r.Date,
		TimeOfDay:    r.Time,
		TotalAmount:  r.TotalAmount,
		Category:     r.Category,
		VATAmount:    r.VATAmount,
		Notes:        r.Notes,
		QRData:       r.QRData,
		ImageURL:     r.ImageURL,
		PDFURL:       r.PDFURL,
		SyncStatus:   r.SyncStatus,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if len(r.Items) > 0 {
		items, err := json.Marshal(r.Items)
		if err != nil {
			return nil, fmt.Errorf("marshal receipt items: %w", err)
		}
		rec.Items = items
	}
	return rec, nil
}

func fromReceiptRecord(rec *ReceiptRecord) (*domain.Receipt, error) {
	r := &domain.Receipt{
		ID:           rec.ID,
		MerchantName: rec.MerchantName,
		PIB:          rec.PIB,
		Date:         rec.Date,
		Time:         rec.TimeOfDay,
		TotalAmount:  rec.TotalAmount,
		Category:     rec.Category,
		VATAmount:    rec.VATAmount,
		Notes:        rec.Notes,
		QRData:       rec.QRData,
		ImageURL:     rec.ImageURL,
		PDFURL:       rec.PDFURL,
		SyncStatus:   rec.SyncStatus,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if len(rec.Items) > 0 {
		if err := json.Unmarshal(rec.Items, &r.Items); err != nil {
			return nil, fmt.Errorf("unmarshal receipt items: %w", err)
		}
	}
	return r, nil
}

func toDeviceRecord(d *domain.Device) (*DeviceRecord, error) {
	rec := &DeviceRecord{
		ID:             d.ID,
		Brand:          d.Brand,
		Category:       d.Category,
		PurchaseDate:   d.PurchaseDate,
		WarrantyMonths: d.WarrantyMonths,
		WarrantyUntil:  d.WarrantyUntil,
		Status:         d.Status,
		SerialNumber:   d.SerialNumber,
		ImageURL:       d.ImageURL,
		WarrantyTerms:  d.WarrantyTerms,

		ServiceCenterName:    d.ServiceCenterName,
		ServiceCenterAddress: d.ServiceCenterAddress,
		ServiceCenterPhone:   d.ServiceCenterPhone,
		ServiceCenterHours:   d.ServiceCenterHours,

		ReceiptID:  d.ReceiptID,
		SyncStatus: d.SyncStatus,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	reminders, err := json.Marshal(d.Reminders)
	if err != nil {
		return nil, fmt.Errorf("marshal device reminders: %w", err)
	}
	rec.Reminders = reminders
	if len(d.Attachments) > 0 {
		atts, err := json.Marshal(d.Attachments)
		if err != nil {
			return nil, fmt.Errorf("marshal device attachments: %w", err)
		}
		rec.Attachments = atts
	}
	return rec, nil
}

func fromDeviceRecord(rec *DeviceRecord) (*domain.Device, error) {
	d := &domain.Device{
		ID:             rec.ID,
		Brand:          rec.Brand,
		Category:       rec.Category,
		PurchaseDate:   rec.PurchaseDate,
		WarrantyMonths: rec.WarrantyMonths,
		WarrantyUntil:  rec.WarrantyUntil,
		Status:         rec.Status,
		Reminders:      []domain.Reminder{},
		SerialNumber:   rec.SerialNumber,
		ImageURL:       rec.ImageURL,
		WarrantyTerms:  rec.WarrantyTerms,

		ServiceCenterName:    rec.ServiceCenterName,
		ServiceCenterAddress: rec.ServiceCenterAddress,
		ServiceCenterPhone:   rec.ServiceCenterPhone,
		ServiceCenterHours:   rec.ServiceCenterHours,

		ReceiptID:  rec.ReceiptID,
		SyncStatus: rec.SyncStatus,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if len(rec.Reminders) > 0 {
		if err := json.Unmarshal(rec.Reminders, &d.Reminders); err != nil {
			return nil, fmt.Errorf("unmarshal device reminders: %w", err)
		}
	}
	if len(rec.Attachments) > 0 {
		if err := json.Unmarshal(rec.Attachments, &d.Attachments); err != nil {
			return nil, fmt.Errorf("unmarshal device attachments: %w", err)
		}
	}
	return d, nil
}

func toBillRecord(b *domain.HouseholdBill) (*BillRecord, error) {
	rec := &BillRecord{
		ID:            b.ID,
		BillType:      b.BillType,
		Status:        b.Status,
		Provider:      b.Provider,
		Amount:        b.Amount,
		DueDate:       b.DueDate,
		PeriodStart:   b.PeriodStart,
		PeriodEnd:     b.PeriodEnd,
		AccountNumber: b.AccountNumber,
		PaidDate:      b.PaidDate,
		Notes:         b.Notes,
		SyncStatus:    b.SyncStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Consumption != nil {
		cons, err := json.Marshal(b.Consumption)
		if err != nil {
			return nil, fmt.Errorf("marshal bill consumption: %w", err)
		}
		rec.Consumption = cons
	}
	return rec, nil
}

func fromBillRecord(rec *BillRecord) (*domain.HouseholdBill, error) {
	b := &domain.HouseholdBill{
		ID:            rec.ID,
		BillType:      rec.BillType,
		Status:        rec.Status,
		Provider:      rec.Provider,
		Amount:        rec.Amount,
		DueDate:       rec.DueDate,
		PeriodStart:   rec.PeriodStart,
		PeriodEnd:     rec.PeriodEnd,
		AccountNumber: rec.AccountNumber,
		PaidDate:      rec.PaidDate,
		Notes:         rec.Notes,
		SyncStatus:    rec.SyncStatus,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if len(rec.Consumption) > 0 {
		b.Consumption = &domain.HouseholdConsumption{}
		if err := json.Unmarshal(rec.Consumption, b.Consumption); err != nil {
			return nil, fmt.Errorf("unmarshal bill consumption: %w", err)
		}
	}
	return b, nil
}
