package filesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmarkovic/racun-sync/internal/reconcile"
)

func TestFetchRows(t *testing.T) {
	dir := t.TempDir()
	dump := `[{"id": 1, "vendor": "Maxi"}, {"id": "2", "total_amount": 99.5}]`
	if err := os.WriteFile(filepath.Join(dir, "receipt.json"), []byte(dump), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := New(dir).FetchRows(context.Background(), reconcile.KindReceipt)
	if err != nil {
		t.Fatalf("FetchRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["vendor"] != "Maxi" {
		t.Errorf("rows[0].vendor = %v, want Maxi", rows[0]["vendor"])
	}
	// JSON numbers decode as float64; the parsers rely on that.
	if _, ok := rows[0]["id"].(float64); !ok {
		t.Errorf("rows[0].id has type %T, want float64", rows[0]["id"])
	}
}

func TestFetchRows_MissingDumpIsEmpty(t *testing.T) {
	rows, err := New(t.TempDir()).FetchRows(context.Background(), reconcile.KindDevice)
	if err != nil {
		t.Fatalf("FetchRows for missing dump errored: %v", err)
	}
	if rows != nil {
		t.Errorf("got %v, want nil batch", rows)
	}
}

func TestFetchRows_MalformedDump(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "receipt.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir).FetchRows(context.Background(), reconcile.KindReceipt); err == nil {
		t.Error("expected error for malformed dump")
	}
}
