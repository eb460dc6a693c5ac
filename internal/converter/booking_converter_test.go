package converter_test

import (
	"testing"
	"time"

	"temple-booking/internal/converter"
	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func darshanRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Type:        "darshan",
		DarshanType: "vip",
		TicketCount: 3,
		Date:        "2026-08-28",
		UserDetails: dto.UserDetailsRequest{
			Name:  "Raj Kumar",
			Phone: "9876543210",
			Email: "raj@example.com",
		},
	}
}

func TestIntentToRecord_Darshan(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	record, err := converter.IntentToRecord(darshanRequest(), "booking_1", "TKT-20260828-A1B2C3", "TXN1", now)
	require.NoError(t, err)

	assert.Equal(t, "booking_1", record.ID)
	assert.Equal(t, "TKT-20260828-A1B2C3", record.BookingNumber)
	assert.Equal(t, entity.ServiceTypeDarshan, record.ServiceType)
	assert.Equal(t, "VIP Darshan", record.ServiceName)
	assert.Equal(t, int64(600), record.Amount) // 200 x 3
	assert.Equal(t, 3, record.Count)
	assert.Equal(t, "9:00 AM", record.Time)
	assert.Equal(t, entity.BookingStatusConfirmed, record.Status)
	assert.Equal(t, now.Format(time.RFC3339), record.Timestamp)
	assert.Equal(t, "Raj Kumar", record.CustomerName)
	assert.Equal(t, "Raj Kumar", record.UserDetails.Name)
	assert.Empty(t, record.VehicleType)
}

func TestIntentToRecord_VehicleDefaults(t *testing.T) {
	req := &dto.CreateBookingRequest{
		Type:          "vehicle",
		VehicleType:   "car",
		VehicleCount:  1,
		VehicleNumber: "KA01AB1234",
		Date:          "2026-09-01",
	}

	record, err := converter.IntentToRecord(req, "booking_2", "VPJ-20260901-D4E5F6", "TXN2", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Guest User", record.CustomerName)
	assert.Equal(t, "upi", record.PaymentMethod)
	assert.Equal(t, "10:00 AM", record.Time)
	assert.Equal(t, "Car/Sedan", record.ServiceName)
	assert.Equal(t, "Car/Sedan", record.VehicleType)
	assert.Equal(t, "KA01AB1234", record.VehicleNumber)
	assert.Equal(t, int64(500), record.Amount)
}

func TestIntentToRecord_PaymentMethodPreserved(t *testing.T) {
	req := darshanRequest()
	req.PaymentMethod = "card"

	record, err := converter.IntentToRecord(req, "booking_3", "TKT-20260828-000001", "TXN3", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "card", record.PaymentMethod)
}

func TestIntentToRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateBookingRequest)
		wantErr error
	}{
		{
			name:    "unknown service type",
			mutate:  func(r *dto.CreateBookingRequest) { r.Type = "helicopter" },
			wantErr: converter.ErrUnknownServiceType,
		},
		{
			name:    "unknown offering",
			mutate:  func(r *dto.CreateBookingRequest) { r.DarshanType = "platinum" },
			wantErr: converter.ErrUnknownOffering,
		},
		{
			name:    "missing offering id",
			mutate:  func(r *dto.CreateBookingRequest) { r.DarshanType = "" },
			wantErr: converter.ErrUnknownOffering,
		},
		{
			name:    "zero count",
			mutate:  func(r *dto.CreateBookingRequest) { r.TicketCount = 0 },
			wantErr: converter.ErrInvalidCount,
		},
		{
			name:    "negative count",
			mutate:  func(r *dto.CreateBookingRequest) { r.TicketCount = -2 },
			wantErr: converter.ErrInvalidCount,
		},
		{
			name:    "bad date",
			mutate:  func(r *dto.CreateBookingRequest) { r.Date = "28-08-2026" },
			wantErr: converter.ErrInvalidDate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := darshanRequest()
			tc.mutate(req)

			_, err := converter.IntentToRecord(req, "booking_x", "TKT-X", "TXN-X", time.Now())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBookingToResponse_RoundtripsFields(t *testing.T) {
	record, err := converter.IntentToRecord(darshanRequest(), "booking_4", "TKT-20260828-FFFFFF", "TXN4", time.Now())
	require.NoError(t, err)

	resp := converter.BookingToResponse(record)
	require.NotNil(t, resp)
	assert.Equal(t, record.ID, resp.ID)
	assert.Equal(t, record.BookingNumber, resp.BookingNumber)
	assert.Equal(t, string(record.ServiceType), resp.ServiceType)
	assert.Equal(t, record.Amount, resp.Amount)
	assert.Equal(t, record.UserDetails.Email, resp.UserDetails.Email)

	assert.Nil(t, converter.BookingToResponse(nil))
}
