package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"temple-booking/internal/domain/entity"
	domainRepo "temple-booking/internal/domain/repository"
	"temple-booking/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

// Persisted state layout: two logical records in the key-value store.
const (
	bookingsKey = "temple_bookings"
	statsKey    = "temple_stats"
)

type ledgerRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewLedgerRepository(store kvstore.Store, log *logrus.Logger) domainRepo.LedgerRepository {
	return &ledgerRepository{
		store: store,
		log:   log,
	}
}

// Load returns the full record list in insertion order. A missing key or
// an unreadable/corrupt value degrades to an empty list; this is logged
// but never fatal.
func (r *ledgerRepository) Load(ctx context.Context) []entity.BookingRecord {
	data, err := r.store.Get(ctx, bookingsKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			r.log.Warnf("Failed to load bookings, treating ledger as empty: %+v", err)
		}
		return []entity.BookingRecord{}
	}

	var records []entity.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.Warnf("Failed to parse persisted bookings, treating ledger as empty: %+v", err)
		return []entity.BookingRecord{}
	}
	if records == nil {
		return []entity.BookingRecord{}
	}
	return records
}

// Append adds one record to the end of the list and persists the whole
// list. Load immediately after a successful Append includes the record.
func (r *ledgerRepository) Append(ctx context.Context, record *entity.BookingRecord) error {
	records := r.Load(ctx)
	records = append(records, *record)
	return r.persist(ctx, records)
}

// Replace persists a full replacement list. Used by status updates and
// deletes, which rewrite the list they loaded.
func (r *ledgerRepository) Replace(ctx context.Context, records []entity.BookingRecord) error {
	if records == nil {
		records = []entity.BookingRecord{}
	}
	return r.persist(ctx, records)
}

func (r *ledgerRepository) persist(ctx context.Context, records []entity.BookingRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := r.store.Set(ctx, bookingsKey, data); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	return nil
}

// LoadStats returns the last persisted snapshot. The second return value
// is false when no usable snapshot exists; callers recompute instead.
func (r *ledgerRepository) LoadStats(ctx context.Context) (*entity.Stats, bool) {
	data, err := r.store.Get(ctx, statsKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			r.log.Warnf("Failed to load stats snapshot: %+v", err)
		}
		return nil, false
	}

	var stats entity.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.log.Warnf("Failed to parse stats snapshot: %+v", err)
		return nil, false
	}
	return &stats, true
}

func (r *ledgerRepository) SaveStats(ctx context.Context, stats *entity.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := r.store.Set(ctx, statsKey, data); err != nil {
		return fmt.Errorf("persist stats: %w", err)
	}
	return nil
}
