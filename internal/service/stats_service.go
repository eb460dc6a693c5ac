package service

import (
	"context"
	"time"

	"temple-booking/internal/domain/entity"
	"temple-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// StatsService recomputes the derived summary metrics from the full
// ledger. There is no incremental delta tracking: every mutation pays an
// O(n) recompute, which removes a whole class of drift bugs at the scale
// this ledger runs at.
type StatsService struct {
	ledger repository.LedgerRepository
	log    *logrus.Logger
}

func NewStatsService(ledger repository.LedgerRepository, log *logrus.Logger) *StatsService {
	return &StatsService{
		ledger: ledger,
		log:    log,
	}
}

// Recompute rebuilds the stats snapshot from the record list and
// persists it under the stats key.
func (s *StatsService) Recompute(ctx context.Context) (*entity.Stats, error) {
	records := s.ledger.Load(ctx)
	stats := computeStats(records, time.Now().Format("2006-01-02"))

	if err := s.ledger.SaveStats(ctx, stats); err != nil {
		s.log.Errorf("Failed to persist stats snapshot: %+v", err)
		return nil, err
	}
	return stats, nil
}

func computeStats(records []entity.BookingRecord, today string) *entity.Stats {
	stats := &entity.Stats{
		TotalBookings: len(records),
	}

	for i := range records {
		record := &records[i]

		stats.TotalRevenue += record.Amount
		stats.TotalVisitors += record.Count

		if record.Date == today {
			stats.TodayBookings++
			stats.TodayRevenue += record.Amount
		}

		switch record.ServiceType {
		case entity.ServiceTypeDarshan:
			stats.DarshanBookings++
		case entity.ServiceTypeVehicle:
			stats.VehicleBookings++
		}
	}

	stats.AverageOccupancy = averageOccupancy(len(records))

	return stats
}

// averageOccupancy is a display heuristic carried over from the admin
// dashboard: 70% plus a small cyclic component, clamped to [60, 95].
func averageOccupancy(totalBookings int) int {
	occupancy := 70 + totalBookings%30
	if occupancy < 60 {
		occupancy = 60
	}
	if occupancy > 95 {
		occupancy = 95
	}
	return occupancy
}
