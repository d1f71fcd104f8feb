package services

import (
	"testing"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
)

func TestTicketServiceGenerate(t *testing.T) {
	loader := func(id int64) (ticketData, error) {
		return ticketData{
			BookingID:     id,
			HolderName:    "Tester",
			HolderEmail:   "tester@example.com",
			PaymentStatus: models.PaymentStatusCompleted,
			Status:        models.BookingStatusConfirmed,
			TotalPrice:    120.50,
			Lines: []ticketLine{
				{EventTitle: "Go Conf", EventDate: "2026-09-12", Location: "Main Hall", Quantity: 2},
				{EventTitle: "Workshop", EventDate: "2026-09-13", Location: "Room 2", Quantity: 1},
			},
		}, nil
	}

	svc := TicketService{Loader: loader}

	pdf, filename, err := svc.GenerateTicket(10)
	if err != nil {
		t.Fatalf("GenerateTicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("GenerateTicket returned empty data")
	}
	if filename != "TICKET_10.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestTicketServiceRejectsUnpaidBooking(t *testing.T) {
	loader := func(id int64) (ticketData, error) {
		return ticketData{BookingID: id, PaymentStatus: models.PaymentStatusPending}, nil
	}

	svc := TicketService{Loader: loader}

	if _, _, err := svc.GenerateTicket(10); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
