package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// PaymentService simulates the external payment gateway. Real payment
// correctness is delegated to the gateway; this stand-in always succeeds
// after a configured delay so the booking flow can be exercised
// end to end.
type PaymentService struct {
	delay time.Duration
	log   *logrus.Logger
}

type ChargeResult struct {
	TransactionID string
	Method        string
}

func NewPaymentService(delay time.Duration, log *logrus.Logger) *PaymentService {
	return &PaymentService{
		delay: delay,
		log:   log,
	}
}

// Charge simulates collecting the given amount. It honors context
// cancellation during the simulated gateway round trip.
func (s *PaymentService) Charge(ctx context.Context, amount int64, method string) (*ChargeResult, error) {
	if method == "" {
		method = "upi"
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	result := &ChargeResult{
		TransactionID: fmt.Sprintf("TXN%d", time.Now().UnixMilli()),
		Method:        method,
	}

	s.log.Infof("Payment charged: amount=%d, method=%s, txn=%s", amount, method, result.TransactionID)
	return result, nil
}
