package services

import (
	"bytes"
	"fmt"
	"strings"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a PDF ticket for a booking.
type TicketService struct {
	BookingRepo repositories.BookingRepo
	EventRepo   repositories.EventRepo
	UserRepo    repositories.UserRepo
	RequestID   string
	Loader      func(int64) (ticketData, error)
}

type ticketLine struct {
	EventTitle string
	EventDate  string
	Location   string
	Quantity   int
}

type ticketData struct {
	BookingID     int64
	HolderName    string
	HolderEmail   string
	PaymentStatus string
	Status        string
	TotalPrice    float64
	Lines         []ticketLine
}

func (s TicketService) GenerateTicket(bookingID int64) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	if !data.Confirmed() {
		return nil, "", domain.ValidationError{Msg: "ticket is only available for paid bookings"}
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(data)
}

func (s TicketService) loadTicketData(bookingID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	booking, err := BookingService{BookingRepo: s.BookingRepo}.GetBooking(bookingID)
	if err != nil {
		return ticketData{}, err
	}

	out := ticketData{
		BookingID:     booking.ID,
		PaymentStatus: booking.PaymentStatus,
		Status:        booking.Status,
		TotalPrice:    booking.TotalPrice,
	}

	if user, err := (UserService{UserRepo: s.UserRepo}).GetUser(booking.UserID); err == nil {
		out.HolderName = user.FullName
		out.HolderEmail = user.Email
	}

	for _, line := range booking.Cart {
		tl := ticketLine{Quantity: line.Quantity}
		if ev, err := s.EventRepo.GetByID(line.EventID); err == nil {
			tl.EventTitle = ev.Title
			tl.EventDate = ev.EventDate
			tl.Location = ev.Location
		}
		out.Lines = append(out.Lines, tl)
	}
	return out, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EVENT TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Booking        : #%d", d.BookingID),
		fmt.Sprintf("Holder         : %s", safe(d.HolderName, "-")),
		fmt.Sprintf("Email          : %s", safe(d.HolderEmail, "-")),
		fmt.Sprintf("Status         : %s / %s", safe(d.Status, "-"), safe(d.PaymentStatus, "-")),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Events")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range d.Lines {
		pdf.Cell(0, 7, fmt.Sprintf("%dx %s  %s  %s",
			line.Quantity, safe(line.EventTitle, "-"), safe(line.EventDate, "-"), safe(line.Location, "-")))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total: $%.2f", d.TotalPrice))

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this ticket at the entrance. One ticket covers all listed events for the stated quantities.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// Confirmed reports whether the ticket should be available for download.
func (d ticketData) Confirmed() bool {
	return d.PaymentStatus == models.PaymentStatusCompleted
}
