package repository

import (
	"context"

	"temple-booking/internal/domain/entity"
)

// LedgerRepository owns all booking records and the derived stats
// snapshot. No other component mutates persisted state directly.
//
// Load never fails: missing or unreadable data degrades to an empty
// list. Append and Replace propagate storage errors to the caller.
type LedgerRepository interface {
	Load(ctx context.Context) []entity.BookingRecord
	Append(ctx context.Context, record *entity.BookingRecord) error
	Replace(ctx context.Context, records []entity.BookingRecord) error
	LoadStats(ctx context.Context) (*entity.Stats, bool)
	SaveStats(ctx context.Context, stats *entity.Stats) error
}
