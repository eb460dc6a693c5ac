package dto

// CreateDonationRequest is the donation intent. Donations are charged
// through the same simulated gateway as bookings but are not persisted
// to the ledger.
type CreateDonationRequest struct {
	DonorName     string `json:"donorName" validate:"required"`
	DonorPhone    string `json:"donorPhone" validate:"required,min=10"`
	DonorEmail    string `json:"donorEmail" validate:"omitempty,email"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type DonationResponse struct {
	DonationID    string `json:"donationId"`
	DonorName     string `json:"donorName"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}
