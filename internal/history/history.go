// Package history provides persistence for completed comparison records.
package history

import (
	"context"
	"time"

	"github.com/alienxp03/splitdecision/internal/core"
)

const (
	// MaxRecords caps how many comparisons a store retains. Older records
	// are trimmed on write.
	MaxRecords = 100

	// DefaultRecent is the read size when the caller does not ask for one.
	DefaultRecent = 20
)

// Store defines the interface for comparison persistence.
type Store interface {
	// Save appends a record, trimming the oldest entries past MaxRecords.
	Save(ctx context.Context, rec core.ComparisonRecord) error

	// Recent returns up to limit stored records, newest first. A limit
	// outside (0, MaxRecords] is replaced by DefaultRecent or MaxRecords.
	Recent(ctx context.Context, limit int) ([]core.ComparisonRecord, error)

	// Close closes the store.
	Close() error
}

// clampLimit normalizes a caller-supplied read size.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecent
	}
	if limit > MaxRecords {
		return MaxRecords
	}
	return limit
}

// Sanitize normalizes a record before it is written: text fields are
// truncated, confidence is clamped, and blank category and timestamp get
// defaults.
func Sanitize(rec core.ComparisonRecord) core.ComparisonRecord {
	rec.OptionA = core.Truncate(rec.OptionA, core.MaxFieldLen)
	rec.OptionB = core.Truncate(rec.OptionB, core.MaxFieldLen)
	rec.Winner = core.Truncate(rec.Winner, core.MaxFieldLen)
	rec.Category = core.Truncate(rec.Category, core.MaxFieldLen)
	if rec.Category == "" {
		rec.Category = "General"
	}
	rec.Confidence = core.ClampConfidence(rec.Confidence)
	if rec.Timestamp == 0 {
		rec.Timestamp = time.Now().UnixMilli()
	}
	return rec
}
