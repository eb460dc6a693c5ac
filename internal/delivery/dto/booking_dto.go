package dto

// Request DTOs

// UserDetailsRequest carries the contact fields of a booking intent.
// Name defaults to "Guest User" and phone/email to empty strings when
// omitted; see the converter.
type UserDetailsRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CreateBookingRequest is the loosely-typed booking intent submitted by
// the booking pages. Darshan intents carry darshanType/ticketCount,
// vehicle intents carry vehicleType/vehicleCount.
type CreateBookingRequest struct {
	Type          string             `json:"type" validate:"required,oneof=darshan vehicle"`
	DarshanType   string             `json:"darshanType,omitempty"`
	TicketCount   int                `json:"ticketCount,omitempty"`
	VehicleType   string             `json:"vehicleType,omitempty"`
	VehicleCount  int                `json:"vehicleCount,omitempty"`
	VehicleNumber string             `json:"vehicleNumber,omitempty"`
	Date          string             `json:"date" validate:"required"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	UserDetails   UserDetailsRequest `json:"userDetails"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending cancelled completed"`
}

// Response DTOs

type UserDetailsResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID            string              `json:"id"`
	BookingNumber string              `json:"bookingNumber"`
	CustomerName  string              `json:"customerName"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	ServiceType   string              `json:"serviceType"`
	ServiceName   string              `json:"serviceName"`
	Date          string              `json:"date"`
	Time          string              `json:"time,omitempty"`
	Count         int                 `json:"count"`
	Amount        int64               `json:"amount"`
	Status        string              `json:"status"`
	Timestamp     string              `json:"timestamp"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	TransactionID string              `json:"transactionId,omitempty"`
	VehicleNumber string              `json:"vehicleNumber,omitempty"`
	VehicleType   string              `json:"vehicleType,omitempty"`
	UserDetails   UserDetailsResponse `json:"userDetails"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type StatsResponse struct {
	TotalBookings    int   `json:"totalBookings"`
	TodayBookings    int   `json:"todayBookings"`
	DarshanBookings  int   `json:"darshanBookings"`
	VehicleBookings  int   `json:"vehicleBookings"`
	TotalRevenue     int64 `json:"totalRevenue"`
	TodayRevenue     int64 `json:"todayRevenue"`
	AverageOccupancy int   `json:"averageOccupancy"`
	TotalVisitors    int   `json:"totalVisitors"`
}
