// Package syncer drives sync passes: it fetches batches of raw rows from
// the remote source, runs them through the reconcile parsers and upserts
// the survivors into the local store, consulting the conflict predicate so
// newer local edits are never clobbered.
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmarkovic/racun-sync/internal/domain"
	"github.com/dmarkovic/racun-sync/internal/reconcile"
	"github.com/dmarkovic/racun-sync/internal/remote"
)

// LocalStore is the slice of the persistence layer a sync pass needs.
type LocalStore interface {
	UpsertReceipt(ctx context.Context, r *domain.Receipt) error
	UpsertDevice(ctx context.Context, d *domain.Device) error
	UpsertBill(ctx context.Context, b *domain.HouseholdBill) error

	ReceiptLastUpdated(ctx context.Context, id int64) (*time.Time, error)
	DeviceLastUpdated(ctx context.Context, id int64) (*time.Time, error)
	BillLastUpdated(ctx context.Context, id int64) (*time.Time, error)
}

// Kinds lists the entity kinds a full sync covers, in dependency order:
// receipts first so device→receipt links resolve against fresh data.
var Kinds = []string{reconcile.KindReceipt, reconcile.KindDevice, reconcile.KindBill}

// PassResult summarizes one sync pass over one entity kind.
type PassResult struct {
	Kind    string
	Fetched int // rows returned by the source
	Applied int // parsed and upserted
	Stale   int // parsed but local copy was at least as new
	Skipped int // dropped by the parser (bad id, already logged)
}

// Syncer reconciles remote rows into the local store.
type Syncer struct {
	source remote.Source
	store  LocalStore
	parser *reconcile.Parser
	log    zerolog.Logger
}

// New creates a Syncer.
func New(source remote.Source, store LocalStore, parser *reconcile.Parser, log zerolog.Logger) *Syncer {
	return &Syncer{source: source, store: store, parser: parser, log: log}
}

// SyncPass reconciles one entity kind. A row the parser rejects is counted
// and skipped, never fatal; storage and source errors abort the pass.
func (s *Syncer) SyncPass(ctx context.Context, kind string) (*PassResult, error) {
	rows, err := s.source.FetchRows(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("fetch %s rows: %w", kind, err)
	}

	res := &PassResult{Kind: kind, Fetched: len(rows)}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.reconcileRow(ctx, kind, row, res); err != nil {
			return res, fmt.Errorf("reconcile %s row: %w", kind, err)
		}
	}

	s.log.Info().
		Str("kind", kind).
		Int("fetched", res.Fetched).
		Int("applied", res.Applied).
		Int("stale", res.Stale).
		Int("skipped", res.Skipped).
		Msg("sync pass finished")
	return res, nil
}

// SyncAll runs a pass for every entity kind.
func (s *Syncer) SyncAll(ctx context.Context) ([]*PassResult, error) {
	results := make([]*PassResult, 0, len(Kinds))
	for _, kind := range Kinds {
		res, err := s.SyncPass(ctx, kind)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Syncer) reconcileRow(ctx context.Context, kind string, row reconcile.Row, res *PassResult) error {
	switch kind {
	case reconcile.KindReceipt:
		r := s.parser.ParseReceiptRow(row)
		if r == nil {
			res.Skipped++
			return nil
		}
		last, err := s.store.ReceiptLastUpdated(ctx, r.ID)
		if err != nil {
			return err
		}
		if !s.parser.IsRemoteNewer(row["updated_at"], last) {
			res.Stale++
			return nil
		}
		if err := s.store.UpsertReceipt(ctx, r); err != nil {
			return err
		}

	case reconcile.KindDevice:
		d := s.parser.ParseDeviceRow(row)
		if d == nil {
			res.Skipped++
			return nil
		}
		last, err := s.store.DeviceLastUpdated(ctx, d.ID)
		if err != nil {
			return err
		}
		if !s.parser.IsRemoteNewer(row["updated_at"], last) {
			res.Stale++
			return nil
		}
		if err := s.store.UpsertDevice(ctx, d); err != nil {
			return err
		}

	case reconcile.KindBill:
		b := s.parser.ParseHouseholdBillRow(row)
		if b == nil {
			res.Skipped++
			return nil
		}
		last, err := s.store.BillLastUpdated(ctx, b.ID)
		if err != nil {
			return err
		}
		if !s.parser.IsRemoteNewer(row["updated_at"], last) {
			res.Stale++
			return nil
		}
		if err := s.store.UpsertBill(ctx, b); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	res.Applied++
	return nil
}
