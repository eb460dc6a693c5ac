package service

import (
	"context"
	"fmt"
	"time"

	"temple-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// TicketExportService stands in for the remote "save ticket metadata"
// endpoint (spreadsheet + cloud image storage). The integration is
// stubbed: it succeeds after a delay. Export runs fire-and-forget after
// the booking is persisted; an export failure never rolls the booking
// back.
type TicketExportService struct {
	delay time.Duration
	log   *logrus.Logger
}

func NewTicketExportService(delay time.Duration, log *logrus.Logger) *TicketExportService {
	return &TicketExportService{
		delay: delay,
		log:   log,
	}
}

// ExportAsync schedules the export of a freshly persisted booking.
func (s *TicketExportService) ExportAsync(record *entity.BookingRecord) {
	rec := *record
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		imageURL, err := s.UploadTicketImage(ctx, rec.BookingNumber)
		if err != nil {
			s.log.Warnf("Ticket image upload failed for %s (booking unaffected): %+v", rec.BookingNumber, err)
			return
		}

		if err := s.SaveTicketMetadata(ctx, &rec, imageURL); err != nil {
			s.log.Warnf("Ticket metadata export failed for %s (booking unaffected): %+v", rec.BookingNumber, err)
		}
	}()
}

// UploadTicketImage simulates pushing the rendered ticket to cloud
// storage and returns the public URL it would live at.
func (s *TicketExportService) UploadTicketImage(ctx context.Context, reference string) (string, error) {
	if err := s.sleep(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/temple-tickets/%s.png", reference), nil
}

// SaveTicketMetadata simulates appending the ticket row to the remote
// spreadsheet.
func (s *TicketExportService) SaveTicketMetadata(ctx context.Context, record *entity.BookingRecord, imageURL string) error {
	if err := s.sleep(ctx); err != nil {
		return err
	}
	s.log.Infof("Ticket metadata exported: booking=%s, image=%s", record.BookingNumber, imageURL)
	return nil
}

func (s *TicketExportService) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
