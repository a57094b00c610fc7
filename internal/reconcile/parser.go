// Package reconcile converts untrusted rows from the remote database into
// validated local entities for the offline-capable client.
//
// Every parser in this package is total: a row either produces a fully
// populated entity or nil, never an error and never a panic on malformed
// data. The only fatal condition is an unparseable id; every other field
// degrades to a documented default. Parsers hold no state between calls and
// are safe for concurrent use.
package reconcile

import (
	"time"

	"github.com/rs/zerolog"
)

// Row is one record as returned by the remote relational source. Field
// values are loosely typed: migrations, manual edits or a differently
// versioned client could have written anything.
type Row map[string]any

// Entity kinds handled by the parsers.
const (
	KindReceipt = "receipt"
	KindDevice  = "device"
	KindBill    = "household_bill"
)

// Parser parses remote rows. The clock is injectable so tests can pin the
// "now" fallback used for missing or invalid source dates.
type Parser struct {
	now func() time.Time
	log zerolog.Logger
}

// NewParser creates a parser backed by the real clock.
func NewParser(log zerolog.Logger) *Parser {
	return NewParserWithClock(log, time.Now)
}

// NewParserWithClock creates a parser with a fixed clock function.
func NewParserWithClock(log zerolog.Logger, now func() time.Time) *Parser {
	return &Parser{now: now, log: log}
}

// rejectRow emits the single diagnostic this layer is allowed: a dropped
// row would otherwise vanish silently after a sync, and this log entry is
// the only forensic trail.
func (p *Parser) rejectRow(kind string, row Row) {
	p.log.Warn().
		Str("entity", kind).
		Interface("row", row).
		Msg("dropping remote row with unparseable id")
}
