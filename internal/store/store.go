// Package store is the local persistence layer the sync orchestrator
// upserts reconciled entities into. It owns a single sqlite database so the
// client stays fully usable without connectivity.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dmarkovic/racun-sync/internal/domain"
)

// Store wraps the local sqlite database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and runs migrations.
func Open(path string, logMode bool) (*Store, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if logMode {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&ReceiptRecord{}, &DeviceRecord{}, &BillRecord{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return &Store{db: db}, nil
}

// UpsertReceipt writes a reconciled receipt, replacing any existing row
// with the same id.
func (s *Store) UpsertReceipt(ctx context.Context, r *domain.Receipt) error {
	rec, err := toReceiptRecord(r)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
		return fmt.Errorf("upsert receipt %d: %w", r.ID, err)
	}
	return nil
}

// UpsertDevice writes a reconciled device, replacing any existing row with
// the same id.
func (s *Store) UpsertDevice(ctx context.Context, d *domain.Device) error {
	rec, err := toDeviceRecord(d)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
		return fmt.Errorf("upsert device %d: %w", d.ID, err)
	}
	return nil
}

// UpsertBill writes a reconciled household bill, replacing any existing
// row with the same id.
func (s *Store) UpsertBill(ctx context.Context, b *domain.HouseholdBill) error {
	rec, err := toBillRecord(b)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
		return fmt.Errorf("upsert bill %d: %w", b.ID, err)
	}
	return nil
}

// ReceiptLastUpdated returns the stored update timestamp for a receipt, or
// nil when the receipt is not in the local store yet.
func (s *Store) ReceiptLastUpdated(ctx context.Context, id int64) (*time.Time, error) {
	return s.lastUpdated(ctx, &ReceiptRecord{}, id)
}

// DeviceLastUpdated returns the stored update timestamp for a device, or
// nil when the device is not in the local store yet.
func (s *Store) DeviceLastUpdated(ctx context.Context, id int64) (*time.Time, error) {
	return s.lastUpdated(ctx, &DeviceRecord{}, id)
}

// BillLastUpdated returns the stored update timestamp for a bill, or nil
// when the bill is not in the local store yet.
func (s *Store) BillLastUpdated(ctx context.Context, id int64) (*time.Time, error) {
	return s.lastUpdated(ctx, &BillRecord{}, id)
}

func (s *Store) lastUpdated(ctx context.Context, model any, id int64) (*time.Time, error) {
	var row struct {
		UpdatedAt time.Time
	}
	err := s.db.WithContext(ctx).
		Model(model).
		Select("updated_at").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last updated for id %d: %w", id, err)
	}
	ts := row.UpdatedAt
	return &ts, nil
}

// GetReceipt loads one receipt by id.
func (s *Store) GetReceipt(ctx context.Context, id int64) (*domain.Receipt, error) {
	var rec ReceiptRecord
	if err := s.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("get receipt %d: %w", id, err)
	}
	return fromReceiptRecord(&rec)
}

// GetDevice loads one device by id.
func (s *Store) GetDevice(ctx context.Context, id int64) (*domain.Device, error) {
	var rec DeviceRecord
	if err := s.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("get device %d: %w", id, err)
	}
	return fromDeviceRecord(&rec)
}

// GetBill loads one household bill by id.
func (s *Store) GetBill(ctx context.Context, id int64) (*domain.HouseholdBill, error) {
	var rec BillRecord
	if err := s.db.WithContext(ctx).Take(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("get bill %d: %w", id, err)
	}
	return fromBillRecord(&rec)
}

// ListReceipts returns all receipts ordered by transaction date descending.
func (s *Store) ListReceipts(ctx context.Context) ([]*domain.Receipt, error) {
	var recs []ReceiptRecord
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	out := make([]*domain.Receipt, 0, len(recs))
	for i := range recs {
		r, err := fromReceiptRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ListDevices returns all devices ordered by purchase date descending.
func (s *Store) ListDevices(ctx context.Context) ([]*domain.Device, error) {
	var recs []DeviceRecord
	if err := s.db.WithContext(ctx).Order("purchase_date DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	out := make([]*domain.Device, 0, len(recs))
	for i := range recs {
		d, err := fromDeviceRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ListBills returns all household bills ordered by due date descending.
func (s *Store) ListBills(ctx context.Context) ([]*domain.HouseholdBill, error) {
	var recs []BillRecord
	if err := s.db.WithContext(ctx).Order("due_date DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	out := make([]*domain.HouseholdBill, 0, len(recs))
	for i := range recs {
		b, err := fromBillRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
