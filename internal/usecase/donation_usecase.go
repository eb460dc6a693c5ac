package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"temple-booking/internal/delivery/dto"
	"temple-booking/internal/service"

	"github.com/sirupsen/logrus"
)

// DonationUsecase handles one-off donations. Donations go through the
// same simulated gateway as bookings but are receipts only: they are
// never appended to the booking ledger.
type DonationUsecase interface {
	CreateDonation(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
}

type donationUsecase struct {
	log      *logrus.Logger
	payments *service.PaymentService
}

func NewDonationUsecase(log *logrus.Logger, payments *service.PaymentService) DonationUsecase {
	return &donationUsecase{
		log:      log,
		payments: payments,
	}
}

func (u *donationUsecase) CreateDonation(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	charge, err := u.payments.Charge(ctx, req.Amount, req.PaymentMethod)
	if err != nil {
		u.log.Warnf("Donation payment failed for %s: %+v", req.DonorName, err)
		return nil, err
	}

	now := time.Now()
	donationID := newDonationID(now)

	u.log.Infof("Donation received: id=%s, amount=%d", donationID, req.Amount)
	return &dto.DonationResponse{
		DonationID:    donationID,
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		PaymentMethod: charge.Method,
		TransactionID: charge.TransactionID,
		Status:        "confirmed",
		Timestamp:     now.Format(time.RFC3339),
	}, nil
}

func newDonationID(now time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("DON-%s-%06X", now.Format("20060102"), randomBytes)
}
