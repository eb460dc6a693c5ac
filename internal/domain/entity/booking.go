package entity

// ServiceType identifies the temple service a booking was made for
type ServiceType string

const (
	ServiceTypeDarshan ServiceType = "darshan"
	ServiceTypeVehicle ServiceType = "vehicle"
)

// IsValid checks the service type against the known set
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeDarshan || t == ServiceTypeVehicle
}

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsValid checks the status against the known set. Transitions between
// statuses are deliberately unconstrained: the admin dashboard allows
// manual overrides in any direction.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// UserDetails holds the contact details captured with a booking
type UserDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingRecord is the unit of persisted state in the ledger.
// ID is generated at creation and never reused, even after deletion.
// Amount equals the offering unit price times Count at creation time.
type BookingRecord struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"bookingNumber"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	ServiceType   ServiceType   `json:"serviceType"`
	ServiceName   string        `json:"serviceName"`
	Date          string        `json:"date"`
	Time          string        `json:"time,omitempty"`
	Count         int           `json:"count"`
	Amount        int64         `json:"amount"`
	Status        BookingStatus `json:"status"`
	Timestamp     string        `json:"timestamp"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	VehicleNumber string        `json:"vehicleNumber,omitempty"`
	VehicleType   string        `json:"vehicleType,omitempty"`
	UserDetails   UserDetails   `json:"userDetails"`
}

// IsConfirmed checks if the booking is confirmed
func (b *BookingRecord) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if the booking is cancelled
func (b *BookingRecord) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
