package services

import (
	"database/sql"
	"testing"

	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/payments"
	"eventhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeCard struct {
	intent payments.PaymentIntent
	err    error
	calls  int
}

func (f *fakeCard) CreatePaymentIntent(amount float64, paymentMethodID string) (payments.PaymentIntent, error) {
	f.calls++
	return f.intent, f.err
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, *fakeCard) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	card := &fakeCard{intent: payments.PaymentIntent{ID: "pi_1", Status: payments.StatusSucceeded}}
	svc := BookingService{
		BookingRepo: repositories.BookingRepo{DB: db},
		EventRepo:   repositories.EventRepo{DB: db},
		Card:        card,
		DB:          db,
	}
	return svc, mock, card
}

func TestCreateBookingCardSuccess(t *testing.T) {
	svc, mock, card := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, capacity, price FROM events").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "capacity", "price"}).
			AddRow(1, "Go Conf", 10, 50.0))
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO booking_carts").
		WithArgs(int64(7), int64(1), 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	booking, err := svc.CreateBooking(3, CreateBookingInput{
		Cart:            []models.CartLine{{EventID: 1, Quantity: 2}},
		TotalPrice:      100,
		PaymentGateway:  models.PaymentGatewayGooglePay,
		PaymentMethodID: "pm_card_visa",
	})
	if err != nil {
		t.Fatalf("create booking error: %v", err)
	}
	if booking.ID != 7 {
		t.Fatalf("expected booking id 7, got %d", booking.ID)
	}
	if booking.PaymentStatus != models.PaymentStatusCompleted {
		t.Fatalf("expected COMPLETED payment status, got %s", booking.PaymentStatus)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected PENDING status, got %s", booking.Status)
	}
	if card.calls != 1 {
		t.Fatalf("expected one charge attempt, got %d", card.calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingDeclinedCardReleasesSeats(t *testing.T) {
	svc, mock, card := newBookingService(t)
	card.intent = payments.PaymentIntent{ID: "pi_2", Status: "requires_payment_method"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, capacity, price FROM events").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "capacity", "price"}).
			AddRow(1, "Go Conf", 10, 50.0))
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events SET capacity = capacity \+ `).
		WithArgs(2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(3, CreateBookingInput{
		Cart:            []models.CartLine{{EventID: 1, Quantity: 2}},
		TotalPrice:      100,
		PaymentGateway:  models.PaymentGatewayGooglePay,
		PaymentMethodID: "pm_card_declined",
	})
	if !domain.IsPaymentFailed(err) {
		t.Fatalf("expected payment failed error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	svc, mock, card := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, capacity, price FROM events").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.CreateBooking(3, CreateBookingInput{
		Cart:           []models.CartLine{{EventID: 99, Quantity: 1}},
		TotalPrice:     50,
		PaymentGateway: models.PaymentGatewayPayPal,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if card.calls != 0 {
		t.Fatalf("card must not be charged when reservation fails, got %d calls", card.calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	svc, mock, _ := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, capacity, price FROM events").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "capacity", "price"}).
			AddRow(1, "Sold Out Show", 1, 20.0))
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(3, int64(1), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(3, CreateBookingInput{
		Cart:           []models.CartLine{{EventID: 1, Quantity: 3}},
		TotalPrice:     60,
		PaymentGateway: models.PaymentGatewayPayPal,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A PayPal-gateway booking without a card charge still reserves seats and is
// stored as COMPLETED.
func TestCreateBookingWithoutCardCharge(t *testing.T) {
	svc, mock, card := newBookingService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, title, capacity, price FROM events").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "capacity", "price"}).
			AddRow(1, "Meetup", 5, 10.0))
	mock.ExpectExec("UPDATE events SET capacity = capacity - ").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO booking_carts").
		WithArgs(int64(11), int64(1), 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	booking, err := svc.CreateBooking(3, CreateBookingInput{
		Cart:           []models.CartLine{{EventID: 1, Quantity: 2}},
		TotalPrice:     20,
		PaymentGateway: models.PaymentGatewayPayPal,
	})
	if err != nil {
		t.Fatalf("create booking error: %v", err)
	}
	if booking.PaymentStatus != models.PaymentStatusCompleted {
		t.Fatalf("expected COMPLETED payment status, got %s", booking.PaymentStatus)
	}
	if card.calls != 0 {
		t.Fatalf("card must not be charged for the PayPal gateway, got %d calls", card.calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newBookingService(t)

	cases := []struct {
		name   string
		userID int64
		input  CreateBookingInput
	}{
		{"empty cart", 3, CreateBookingInput{PaymentGateway: models.PaymentGatewayPayPal}},
		{"unknown gateway", 3, CreateBookingInput{
			Cart:           []models.CartLine{{EventID: 1, Quantity: 1}},
			PaymentGateway: "CASH",
		}},
		{"zero quantity", 3, CreateBookingInput{
			Cart:           []models.CartLine{{EventID: 1, Quantity: 0}},
			PaymentGateway: models.PaymentGatewayPayPal,
		}},
		{"invalid user", 0, CreateBookingInput{
			Cart:           []models.CartLine{{EventID: 1, Quantity: 1}},
			PaymentGateway: models.PaymentGatewayPayPal,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateBooking(tc.userID, tc.input); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

type fakeRefundCard struct {
	fakeCard
	refunded  []string
	refundErr error
}

func (f *fakeRefundCard) Refund(paymentIntentID string) error {
	f.refunded = append(f.refunded, paymentIntentID)
	return f.refundErr
}

func expectBookingFetch(mock sqlmock.Sqlmock, id int64, paymentStatus, intentID string) {
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total_price", "payment_gateway", "payment_status",
			"status", "payment_intent_id", "created_at", "updated_at",
		}).AddRow(id, 3, 100.0, models.PaymentGatewayGooglePay, paymentStatus,
			models.BookingStatusPending, intentID, "2026-01-01 10:00:00", "2026-01-01 10:00:00"))
	mock.ExpectQuery("SELECT event_id, quantity FROM booking_carts").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "quantity"}).AddRow(1, 2))
}

// Marking a card booking REFUNDED refunds the original charge first.
func TestUpdateBookingRefundsCharge(t *testing.T) {
	svc, mock, _ := newBookingService(t)
	card := &fakeRefundCard{}
	svc.Card = card

	expectBookingFetch(mock, 7, models.PaymentStatusCompleted, "pi_1")
	mock.ExpectExec("UPDATE bookings SET payment_status=").
		WithArgs(models.PaymentStatusRefunded, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingFetch(mock, 7, models.PaymentStatusRefunded, "pi_1")

	refunded := models.PaymentStatusRefunded
	booking, err := svc.UpdateBooking(7, BookingUpdate{PaymentStatus: &refunded})
	if err != nil {
		t.Fatalf("update booking error: %v", err)
	}
	if booking.PaymentStatus != models.PaymentStatusRefunded {
		t.Fatalf("expected REFUNDED payment status, got %s", booking.PaymentStatus)
	}
	if len(card.refunded) != 1 || card.refunded[0] != "pi_1" {
		t.Fatalf("expected one refund for pi_1, got %v", card.refunded)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAggregateCartMergesDuplicates(t *testing.T) {
	cart := aggregateCart([]models.CartLine{
		{EventID: 1, Quantity: 2},
		{EventID: 2, Quantity: 1},
		{EventID: 1, Quantity: 3},
	})
	if len(cart) != 2 {
		t.Fatalf("expected 2 merged lines, got %d", len(cart))
	}
	if cart[0].EventID != 1 || cart[0].Quantity != 5 {
		t.Fatalf("expected event 1 with quantity 5 first, got %+v", cart[0])
	}
	if cart[1].EventID != 2 || cart[1].Quantity != 1 {
		t.Fatalf("expected event 2 with quantity 1 second, got %+v", cart[1])
	}
}
