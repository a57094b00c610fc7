// Package remote abstracts where raw rows come from. The reconciliation
// core never fetches anything itself; a Source hands it batches of loosely
// typed rows and the syncer does the rest.
package remote

import (
	"context"

	"github.com/dmarkovic/racun-sync/internal/reconcile"
)

// Source fetches raw remote rows for one entity kind. Implementations must
// not validate or reshape rows — that is the reconcile package's job.
type Source interface {
	// FetchRows returns all available rows for the given entity kind
	// (reconcile.KindReceipt, KindDevice, KindBill). Staleness is decided
	// downstream by the conflict predicate, not by the source.
	FetchRows(ctx context.Context, kind string) ([]reconcile.Row, error)
}
