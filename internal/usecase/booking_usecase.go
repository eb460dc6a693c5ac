package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"temple-booking/internal/converter"
	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/domain/entity"
	"temple-booking/internal/domain/repository"
	"temple-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidServiceType = errors.New("unknown service type")
	ErrInvalidDateRange   = errors.New("invalid date range, use YYYY-MM-DD")
)

// BookingUsecase is the only entry point allowed to change ledger
// contents, plus the read-only views served to the booking pages and the
// admin dashboard.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
	GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetBookingsByDateRange(ctx context.Context, start, end string) (*dto.BookingListResponse, error)
	GetTodaysBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetBookingsByServiceType(ctx context.Context, serviceType string) (*dto.BookingListResponse, error)
	SearchBookings(ctx context.Context, query string) (*dto.BookingListResponse, error)
	UpdateBookingStatus(ctx context.Context, id string, status string) (bool, error)
	DeleteBooking(ctx context.Context, id string) (bool, error)
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GenerateTicket(ctx context.Context, id string) ([]byte, string, error)
}

type bookingUsecase struct {
	// mu serializes ledger mutations. The store pattern is
	// read-modify-write over the whole list, a lost-update hazard under
	// the concurrent HTTP server without a single-writer discipline.
	mu       sync.Mutex
	log      *logrus.Logger
	ledger   repository.LedgerRepository
	stats    *service.StatsService
	payments *service.PaymentService
	tickets  *service.TicketService
	exporter *service.TicketExportService
}

func NewBookingUsecase(
	log *logrus.Logger,
	ledger repository.LedgerRepository,
	stats *service.StatsService,
	payments *service.PaymentService,
	tickets *service.TicketService,
	exporter *service.TicketExportService,
) BookingUsecase {
	return &bookingUsecase{
		log:      log,
		ledger:   ledger,
		stats:    stats,
		payments: payments,
		tickets:  tickets,
		exporter: exporter,
	}
}

// CreateBooking converts the intent, charges the simulated gateway,
// appends the record and recomputes stats. The ticket export runs
// fire-and-forget once the record is durable.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	now := time.Now()

	record, err := converter.IntentToRecord(req, newBookingID(now), newBookingNumber(entity.ServiceType(req.Type), now), "", now)
	if err != nil {
		u.log.Warnf("Rejected booking intent: %+v", err)
		return nil, err
	}

	charge, err := u.payments.Charge(ctx, record.Amount, record.PaymentMethod)
	if err != nil {
		u.log.Warnf("Payment failed for booking %s: %+v", record.BookingNumber, err)
		return nil, err
	}
	record.TransactionID = charge.TransactionID
	record.PaymentMethod = charge.Method

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.ledger.Append(ctx, record); err != nil {
		u.log.Errorf("Failed to persist booking %s: %+v", record.BookingNumber, err)
		return nil, err
	}
	if _, err := u.stats.Recompute(ctx); err != nil {
		return nil, err
	}

	u.exporter.ExportAsync(record)

	u.log.Infof("Booking created: id=%s, number=%s, service=%s, amount=%d",
		record.ID, record.BookingNumber, record.ServiceType, record.Amount)
	return converter.BookingToResponse(record), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	records := u.ledger.Load(ctx)
	for i := range records {
		if records[i].ID == id {
			return converter.BookingToResponse(&records[i]), nil
		}
	}
	return nil, ErrBookingNotFound
}

func (u *bookingUsecase) GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	return listResponse(u.ledger.Load(ctx)), nil
}

// GetBookingsByDateRange filters on the date-only field, inclusive on
// both ends.
func (u *bookingUsecase) GetBookingsByDateRange(ctx context.Context, start, end string) (*dto.BookingListResponse, error) {
	if _, err := time.Parse("2006-01-02", start); err != nil {
		return nil, ErrInvalidDateRange
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return nil, ErrInvalidDateRange
	}

	var matched []entity.BookingRecord
	for _, record := range u.ledger.Load(ctx) {
		// dates are YYYY-MM-DD, so lexical order is calendar order
		if record.Date >= start && record.Date <= end {
			matched = append(matched, record)
		}
	}
	return listResponse(matched), nil
}

func (u *bookingUsecase) GetTodaysBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	today := time.Now().Format("2006-01-02")
	return u.GetBookingsByDateRange(ctx, today, today)
}

func (u *bookingUsecase) GetBookingsByServiceType(ctx context.Context, serviceType string) (*dto.BookingListResponse, error) {
	st := entity.ServiceType(serviceType)
	if !st.IsValid() {
		return nil, ErrInvalidServiceType
	}

	var matched []entity.BookingRecord
	for _, record := range u.ledger.Load(ctx) {
		if record.ServiceType == st {
			matched = append(matched, record)
		}
	}
	return listResponse(matched), nil
}

// SearchBookings matches a case-insensitive substring against booking
// number, customer name, email and service name; the phone field is
// compared raw. An empty query returns the unfiltered list.
func (u *bookingUsecase) SearchBookings(ctx context.Context, query string) (*dto.BookingListResponse, error) {
	records := u.ledger.Load(ctx)
	if query == "" {
		return listResponse(records), nil
	}

	lowered := strings.ToLower(query)
	var matched []entity.BookingRecord
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.BookingNumber), lowered) ||
			strings.Contains(strings.ToLower(record.CustomerName), lowered) ||
			strings.Contains(record.Phone, query) ||
			strings.Contains(strings.ToLower(record.Email), lowered) ||
			strings.Contains(strings.ToLower(record.ServiceName), lowered) {
			matched = append(matched, record)
		}
	}
	return listResponse(matched), nil
}

// UpdateBookingStatus mutates the status in place. Returns false without
// an error when the id is not in the ledger. Transitions are not
// constrained beyond the status value itself being valid.
func (u *bookingUsecase) UpdateBookingStatus(ctx context.Context, id string, status string) (bool, error) {
	newStatus := entity.BookingStatus(status)
	if !newStatus.IsValid() {
		return false, ErrInvalidStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	records := u.ledger.Load(ctx)
	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	records[index].Status = newStatus
	if err := u.ledger.Replace(ctx, records); err != nil {
		u.log.Errorf("Failed to persist status update for %s: %+v", id, err)
		return false, err
	}
	if _, err := u.stats.Recompute(ctx); err != nil {
		return false, err
	}

	u.log.Infof("Booking status updated: id=%s, status=%s", id, newStatus)
	return true, nil
}

// DeleteBooking removes the record with the matching id. Returns false
// without an error when nothing was removed.
func (u *bookingUsecase) DeleteBooking(ctx context.Context, id string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	records := u.ledger.Load(ctx)
	remaining := make([]entity.BookingRecord, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			remaining = append(remaining, record)
		}
	}
	if len(remaining) == len(records) {
		return false, nil
	}

	if err := u.ledger.Replace(ctx, remaining); err != nil {
		u.log.Errorf("Failed to persist delete of %s: %+v", id, err)
		return false, err
	}
	if _, err := u.stats.Recompute(ctx); err != nil {
		return false, err
	}

	u.log.Infof("Booking deleted: id=%s", id)
	return true, nil
}

// GetStats always recomputes; the persisted snapshot is advisory only.
func (u *bookingUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := u.stats.Recompute(ctx)
	if err != nil {
		return nil, err
	}
	return converter.StatsToResponse(stats), nil
}

func (u *bookingUsecase) GenerateTicket(ctx context.Context, id string) ([]byte, string, error) {
	records := u.ledger.Load(ctx)
	for i := range records {
		if records[i].ID == id {
			return u.tickets.GenerateEntryPass(&records[i])
		}
	}
	return nil, "", ErrBookingNotFound
}

func listResponse(records []entity.BookingRecord) *dto.BookingListResponse {
	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(records),
		Total:    len(records),
	}
}

// newBookingID generates the immutable record id. The millisecond
// timestamp alone can collide on rapid submissions, so a random suffix
// is always appended.
func newBookingID(now time.Time) string {
	return fmt.Sprintf("booking_%d_%s", now.UnixMilli(), randomSuffix(9))
}

// newBookingNumber generates the human-readable business key:
// TKT-YYYYMMDD-XXXXXX for darshan, VPJ-YYYYMMDD-XXXXXX for vehicle pooja.
func newBookingNumber(serviceType entity.ServiceType, now time.Time) string {
	prefix := "TKT"
	if serviceType == entity.ServiceTypeVehicle {
		prefix = "VPJ"
	}
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%s-%06X", prefix, now.Format("20060102"), randomBytes)
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b)
}
