package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"temple-booking/internal/converter"
	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/infrastructure/kvstore"
	"temple-booking/internal/repository"
	"temple-booking/internal/service"
	"temple-booking/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T, store kvstore.Store) usecase.BookingUsecase {
	t.Helper()

	log := logrus.New()
	ledgerRepo := repository.NewLedgerRepository(store, log)
	statsService := service.NewStatsService(ledgerRepo, log)
	paymentService := service.NewPaymentService(0, log)
	ticketService := service.NewTicketService()
	exportService := service.NewTicketExportService(0, log)

	return usecase.NewBookingUsecase(log, ledgerRepo, statsService, paymentService, ticketService, exportService)
}

func darshanIntent() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Type:        "darshan",
		DarshanType: "general",
		TicketCount: 2,
		Date:        time.Now().Format("2006-01-02"),
		UserDetails: dto.UserDetailsRequest{
			Name:  "Raj Kumar",
			Phone: "9876543210",
			Email: "raj@example.com",
		},
	}
}

func vehicleIntent() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Type:          "vehicle",
		VehicleType:   "car",
		VehicleCount:  1,
		VehicleNumber: "KA01AB1234",
		Date:          time.Now().Format("2006-01-02"),
		UserDetails: dto.UserDetailsRequest{
			Name:  "Priya Sharma",
			Phone: "9123456780",
		},
	}
}

func TestCreateBooking_Darshan(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, darshanIntent())

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, int64(100), booking.Amount) // 2 tickets at Rs. 50
	assert.Equal(t, "darshan", booking.ServiceType)
	assert.Equal(t, "General Darshan", booking.ServiceName)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "9:00 AM", booking.Time)
	assert.True(t, strings.HasPrefix(booking.ID, "booking_"))
	assert.True(t, strings.HasPrefix(booking.BookingNumber, "TKT-"))
	assert.True(t, strings.HasPrefix(booking.TransactionID, "TXN"))

	all, err := uc.GetAllBookings(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, all.Total)
	assert.Equal(t, booking.ID, all.Bookings[0].ID)
}

func TestCreateBooking_FreshIDs(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	first, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	second, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.BookingNumber, second.BookingNumber)
}

func TestCreateBooking_UnknownOffering(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	req := darshanIntent()
	req.DarshanType = "platinum"

	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, converter.ErrUnknownOffering)
}

func TestCreateBooking_MissingServiceData(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	req := darshanIntent()
	req.DarshanType = ""

	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, converter.ErrUnknownOffering)
}

func TestCreateBooking_InvalidCount(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	req := darshanIntent()
	req.TicketCount = 0

	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, converter.ErrInvalidCount)
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	req := darshanIntent()
	req.Date = "25-12-2026"

	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, converter.ErrInvalidDate)
}

// failingStore simulates a persistence backend that rejects writes, the
// quota-exceeded case. Reads still work.
type failingStore struct {
	*kvstore.MemoryStore
}

func (s *failingStore) Set(_ context.Context, _ string, _ []byte) error {
	return errors.New("quota exceeded")
}

func TestCreateBooking_StorageErrorPropagates(t *testing.T) {
	uc := newTestUsecase(t, &failingStore{kvstore.NewMemoryStore()})

	_, err := uc.CreateBooking(context.Background(), darshanIntent())
	require.Error(t, err)

	all, listErr := uc.GetAllBookings(context.Background())
	require.NoError(t, listErr)
	assert.Equal(t, 0, all.Total)
}

func TestSearchBookings_EmptyQueryReturnsAll(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	_, err = uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	all, err := uc.GetAllBookings(ctx)
	require.NoError(t, err)
	searched, err := uc.SearchBookings(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, all.Total, searched.Total)
	assert.Equal(t, all.Bookings, searched.Bookings)
}

func TestSearchBookings_CaseInsensitive(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	_, err = uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	result, err := uc.SearchBookings(ctx, "raj")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Raj Kumar", result.Bookings[0].CustomerName)
}

func TestSearchBookings_MatchesPhoneRaw(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	result, err := uc.SearchBookings(ctx, "912345")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSearchBookings_MatchesServiceName(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	_, err = uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	result, err := uc.SearchBookings(ctx, "sedan")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Car/Sedan", result.Bookings[0].ServiceName)
}

func TestGetBookingsByDateRange_MatchesToday(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	ranged, err := uc.GetBookingsByDateRange(ctx, today, today)
	require.NoError(t, err)
	todays, err := uc.GetTodaysBookings(ctx)
	require.NoError(t, err)

	assert.Equal(t, todays.Bookings, ranged.Bookings)
	assert.Equal(t, 1, ranged.Total)
}

func TestGetBookingsByDateRange_Inclusive(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	req := darshanIntent()
	req.Date = "2026-09-15"
	_, err := uc.CreateBooking(ctx, req)
	require.NoError(t, err)

	result, err := uc.GetBookingsByDateRange(ctx, "2026-09-15", "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	result, err = uc.GetBookingsByDateRange(ctx, "2026-09-16", "2026-09-30")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
}

func TestGetBookingsByDateRange_InvalidBounds(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	_, err := uc.GetBookingsByDateRange(context.Background(), "not-a-date", "2026-09-30")
	assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
}

func TestGetBookingsByServiceType(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	_, err = uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	darshan, err := uc.GetBookingsByServiceType(ctx, "darshan")
	require.NoError(t, err)
	assert.Equal(t, 1, darshan.Total)

	_, err = uc.GetBookingsByServiceType(ctx, "helicopter")
	assert.ErrorIs(t, err, usecase.ErrInvalidServiceType)
}

func TestUpdateBookingStatus_NotFoundLeavesLedgerUnchanged(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)

	updated, err := uc.UpdateBookingStatus(ctx, "booking_does_not_exist", "cancelled")
	require.NoError(t, err)
	assert.False(t, updated)

	after, err := uc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", after.Status)
}

func TestUpdateBookingStatus_VehicleCompleted(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)

	updated, err := uc.UpdateBookingStatus(ctx, booking.ID, "completed")
	require.NoError(t, err)
	assert.True(t, updated)

	vehicles, err := uc.GetBookingsByServiceType(ctx, "vehicle")
	require.NoError(t, err)
	require.Equal(t, 1, vehicles.Total)
	assert.Equal(t, booking.ID, vehicles.Bookings[0].ID)
	assert.Equal(t, "completed", vehicles.Bookings[0].Status)
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())

	_, err := uc.UpdateBookingStatus(context.Background(), "whatever", "archived")
	assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
}

func TestDeleteBooking(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)

	deleted, err := uc.DeleteBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = uc.GetBooking(ctx, booking.ID)
	assert.ErrorIs(t, err, usecase.ErrBookingNotFound)

	// a second delete of the same id removes nothing
	deleted, err = uc.DeleteBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStats_RevenueMatchesLedgerAfterEveryMutation(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	assertRevenueInvariant := func() {
		all, err := uc.GetAllBookings(ctx)
		require.NoError(t, err)
		var sum int64
		for _, b := range all.Bookings {
			sum += b.Amount
		}
		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, sum, stats.TotalRevenue)
		assert.Equal(t, all.Total, stats.TotalBookings)
	}

	first, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	assertRevenueInvariant()

	second, err := uc.CreateBooking(ctx, vehicleIntent())
	require.NoError(t, err)
	assertRevenueInvariant()

	_, err = uc.UpdateBookingStatus(ctx, second.ID, "cancelled")
	require.NoError(t, err)
	assertRevenueInvariant()

	_, err = uc.DeleteBooking(ctx, first.ID)
	require.NoError(t, err)
	assertRevenueInvariant()
}

func TestStats_CreateDeltas(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	before, err := uc.GetStats(ctx)
	require.NoError(t, err)

	booking, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)
	require.Equal(t, int64(100), booking.Amount)

	after, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalBookings+1, after.TotalBookings)
	assert.Equal(t, before.TotalRevenue+100, after.TotalRevenue)
	assert.Equal(t, before.TotalVisitors+2, after.TotalVisitors)
	assert.Equal(t, before.DarshanBookings+1, after.DarshanBookings)
}

func TestGenerateTicket(t *testing.T) {
	uc := newTestUsecase(t, kvstore.NewMemoryStore())
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, darshanIntent())
	require.NoError(t, err)

	pdf, filename, err := uc.GenerateTicket(ctx, booking.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, booking.BookingNumber)

	_, _, err = uc.GenerateTicket(ctx, "booking_missing")
	assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
}
