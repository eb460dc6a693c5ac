package converter

import (
	"errors"
	"time"

	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/domain/entity"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrUnknownOffering    = errors.New("unknown service offering")
	ErrInvalidCount       = errors.New("count must be a positive integer")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
)

// Default time-of-day per service type, matching the slots the temple
// actually runs.
const (
	defaultDarshanTime = "9:00 AM"
	defaultVehicleTime = "10:00 AM"
)

// IntentToRecord converts a booking intent into a canonical BookingRecord.
// The identifiers and the creation instant are supplied by the caller, so
// the transform itself stays pure. Missing or unknown service data fails
// the conversion; a record never carries a fabricated service name.
func IntentToRecord(req *dto.CreateBookingRequest, id, bookingNumber, transactionID string, now time.Time) (*entity.BookingRecord, error) {
	serviceType := entity.ServiceType(req.Type)
	if !serviceType.IsValid() {
		return nil, ErrUnknownServiceType
	}

	var offeringID string
	var count int
	var defaultTime string
	if serviceType == entity.ServiceTypeVehicle {
		offeringID = req.VehicleType
		count = req.VehicleCount
		defaultTime = defaultVehicleTime
	} else {
		offeringID = req.DarshanType
		count = req.TicketCount
		defaultTime = defaultDarshanTime
	}

	offering, ok := entity.LookupOffering(serviceType, offeringID)
	if !ok {
		return nil, ErrUnknownOffering
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	customerName := req.UserDetails.Name
	if customerName == "" {
		customerName = "Guest User"
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "upi"
	}

	vehicleType := ""
	if serviceType == entity.ServiceTypeVehicle {
		vehicleType = offering.Name
	}

	return &entity.BookingRecord{
		ID:            id,
		BookingNumber: bookingNumber,
		CustomerName:  customerName,
		Phone:         req.UserDetails.Phone,
		Email:         req.UserDetails.Email,
		ServiceType:   serviceType,
		ServiceName:   offering.Name,
		Date:          date.Format("2006-01-02"),
		Time:          defaultTime,
		Count:         count,
		Amount:        offering.Price * int64(count),
		Status:        entity.BookingStatusConfirmed,
		Timestamp:     now.Format(time.RFC3339),
		PaymentMethod: paymentMethod,
		TransactionID: transactionID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   vehicleType,
		UserDetails: entity.UserDetails{
			Name:  customerName,
			Phone: req.UserDetails.Phone,
			Email: req.UserDetails.Email,
		},
	}, nil
}

// BookingToResponse converts a BookingRecord to its response DTO
func BookingToResponse(record *entity.BookingRecord) *dto.BookingResponse {
	if record == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:            record.ID,
		BookingNumber: record.BookingNumber,
		CustomerName:  record.CustomerName,
		Phone:         record.Phone,
		Email:         record.Email,
		ServiceType:   string(record.ServiceType),
		ServiceName:   record.ServiceName,
		Date:          record.Date,
		Time:          record.Time,
		Count:         record.Count,
		Amount:        record.Amount,
		Status:        string(record.Status),
		Timestamp:     record.Timestamp,
		PaymentMethod: record.PaymentMethod,
		TransactionID: record.TransactionID,
		VehicleNumber: record.VehicleNumber,
		VehicleType:   record.VehicleType,
		UserDetails: dto.UserDetailsResponse{
			Name:  record.UserDetails.Name,
			Phone: record.UserDetails.Phone,
			Email: record.UserDetails.Email,
		},
	}
}

// BookingsToResponses converts a slice of records to response DTOs
func BookingsToResponses(records []entity.BookingRecord) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(records))
	for i := range records {
		responses[i] = *BookingToResponse(&records[i])
	}
	return responses
}

// StatsToResponse converts a Stats snapshot to its response DTO
func StatsToResponse(stats *entity.Stats) *dto.StatsResponse {
	if stats == nil {
		return nil
	}

	return &dto.StatsResponse{
		TotalBookings:    stats.TotalBookings,
		TodayBookings:    stats.TodayBookings,
		DarshanBookings:  stats.DarshanBookings,
		VehicleBookings:  stats.VehicleBookings,
		TotalRevenue:     stats.TotalRevenue,
		TodayRevenue:     stats.TodayRevenue,
		AverageOccupancy: stats.AverageOccupancy,
		TotalVisitors:    stats.TotalVisitors,
	}
}
