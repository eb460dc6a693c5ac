package service

import (
	"bytes"
	"fmt"
	"strings"

	"temple-booking/internal/domain/entity"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders the printable entry pass for a booking as a PDF.
type TicketService struct{}

func NewTicketService() *TicketService {
	return &TicketService{}
}

// GenerateEntryPass builds the entry pass PDF and a download filename.
func (s *TicketService) GenerateEntryPass(record *entity.BookingRecord) ([]byte, string, error) {
	isVehicle := record.ServiceType == entity.ServiceTypeVehicle

	passTitle := "Darshan Entry Pass"
	countLabel := "Tickets"
	if isVehicle {
		passTitle = "Vehicle Pooja Entry Pass"
		countLabel = "Vehicles"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Entry Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Sri Maha Temple")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Cell(0, 8, passTitle)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, record.BookingNumber)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Booking Reference Number")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer Name : %s", safe(record.CustomerName, "-")),
		fmt.Sprintf("Phone         : %s", safe(record.Phone, "N/A")),
		fmt.Sprintf("Date          : %s", safe(record.Date, "-")),
		fmt.Sprintf("Time          : %s", safe(record.Time, "-")),
		fmt.Sprintf("%s       : %d", countLabel, record.Count),
		fmt.Sprintf("Service       : %s", safe(record.ServiceName, "-")),
	}
	if isVehicle && record.VehicleNumber != "" {
		lines = append(lines, fmt.Sprintf("Vehicle No    : %s", record.VehicleNumber))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Amount Paid: Rs. %d", record.Amount))
	pdf.Ln(12)

	instruction := "Arrive 15 minutes before your visit."
	if isVehicle {
		instruction = "Bring vehicle registration documents."
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6,
		"Important: Show this pass at the temple entrance. Carry a valid photo ID for verification. "+
			instruction+" Non-transferable and non-refundable.",
		"", "", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Sri Maha Temple, 123 Temple Street, Sacred City. Phone: +91 98765 43210")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render entry pass: %w", err)
	}

	filename := fmt.Sprintf("temple-ticket-%s.pdf", safeFilenamePart(record.BookingNumber))
	return buf.Bytes(), filename, nil
}

func safe(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func safeFilenamePart(value string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(value)
}
