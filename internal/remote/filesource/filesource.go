// Package filesource reads remote row dumps from disk. A dump is a JSON
// array of objects, one file per entity kind (receipt.json, device.json,
// household_bill.json), exported from the hosted database. This is the
// offline path: a dump synced onto the machine by any means can be
// reconciled without connectivity.
package filesource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmarkovic/racun-sync/internal/reconcile"
	"github.com/dmarkovic/racun-sync/internal/remote"
)

// Source reads row dumps from a directory.
type Source struct {
	dir string
}

// New creates a file-backed row source rooted at dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// FetchRows implements remote.Source. A missing dump file yields an empty
// batch, not an error: an entity kind that was never exported simply has
// nothing to reconcile.
func (s *Source) FetchRows(ctx context.Context, kind string) ([]reconcile.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, kind+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read row dump %s: %w", path, err)
	}

	var rows []reconcile.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode row dump %s: %w", path, err)
	}
	return rows, nil
}

var _ remote.Source = (*Source)(nil)
