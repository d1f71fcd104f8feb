package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	intconfig "eventhub/internal/config"
	"eventhub/internal/domain"
	"eventhub/internal/domain/models"
	"eventhub/internal/payments"
	"eventhub/internal/repositories"
	"eventhub/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepo
	EventRepo   repositories.EventRepo
	Card        payments.CardCharger
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s BookingService) events() repositories.EventRepo {
	if s.EventRepo.DB != nil {
		return s.EventRepo
	}
	return repositories.EventRepo{DB: s.db()}
}

type CreateBookingInput struct {
	Cart            []models.CartLine `json:"booking_cart"`
	TotalPrice      float64           `json:"total_price"`
	PaymentGateway  string            `json:"payment_gateway"`
	PaymentMethodID string            `json:"paymentMethodId"`
}

// CreateBooking reserves capacity for every cart line, charges the card when
// the gateway requires it, and persists the booking — all inside one
// transaction. Any error rolls everything back; the explicit capacity release
// after a declined charge mirrors the two logical phases of the workflow.
func (s BookingService) CreateBooking(userID int64, input CreateBookingInput) (models.Booking, error) {
	if userID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	if len(input.Cart) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "booking_cart", Msg: "at least one cart item is required"}
	}
	if input.PaymentGateway != models.PaymentGatewayPayPal && input.PaymentGateway != models.PaymentGatewayGooglePay {
		return models.Booking{}, domain.ValidationError{Field: "payment_gateway", Msg: "unknown payment gateway"}
	}
	for _, line := range input.Cart {
		if line.EventID <= 0 || line.Quantity <= 0 {
			return models.Booking{}, domain.ValidationError{Field: "booking_cart", Msg: "event id and quantity must be positive"}
		}
	}

	// Duplicate events in the cart are merged up front so the capacity check
	// always sees the combined quantity.
	cart := aggregateCart(input.Cart)

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	events := s.events()
	for _, line := range cart {
		ev, err := events.GetForUpdateTx(tx, line.EventID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Booking{}, domain.NotFoundError{Resource: "event"}
			}
			return models.Booking{}, domain.InternalError{Err: err}
		}

		ok, err := events.ReserveCapacityTx(tx, line.EventID, line.Quantity)
		if err != nil {
			return models.Booking{}, domain.InternalError{Err: err}
		}
		if !ok {
			return models.Booking{}, domain.ValidationError{
				Msg: fmt.Sprintf("not enough seats available for the event %s", ev.Title),
			}
		}
	}

	paymentIntentID := ""
	if input.PaymentGateway == models.PaymentGatewayGooglePay && input.PaymentMethodID != "" {
		intent, err := s.Card.CreatePaymentIntent(input.TotalPrice, input.PaymentMethodID)
		if err != nil {
			return models.Booking{}, domain.PaymentFailedError{Gateway: "card", Err: err}
		}
		if intent.Status != payments.StatusSucceeded {
			// Give the seats back before surfacing the decline; the rollback
			// would also revert, but the release keeps the reservation and
			// payment phases logically separate.
			for _, line := range cart {
				if err := events.ReleaseCapacityTx(tx, line.EventID, line.Quantity); err != nil {
					return models.Booking{}, domain.InternalError{Err: err}
				}
			}
			return models.Booking{}, domain.PaymentFailedError{Gateway: "card", Msg: "Payment failed"}
		}
		paymentIntentID = intent.ID
	}

	booking := models.Booking{
		UserID:          userID,
		TotalPrice:      input.TotalPrice,
		PaymentGateway:  input.PaymentGateway,
		PaymentStatus:   models.PaymentStatusCompleted,
		Status:          models.BookingStatusPending,
		PaymentIntentID: paymentIntentID,
		Cart:            cart,
	}

	id, err := s.bookings().CreateTx(tx, booking)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	committed = true

	booking.ID = id
	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+strconv.FormatInt(id, 10))
	return booking, nil
}

// aggregateCart merges duplicate event lines, preserving first-seen order.
func aggregateCart(cart []models.CartLine) []models.CartLine {
	index := map[int64]int{}
	out := make([]models.CartLine, 0, len(cart))
	for _, line := range cart {
		if i, ok := index[line.EventID]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[line.EventID] = len(out)
		out = append(out, line)
	}
	return out
}

func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	booking, err := s.bookings().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

func (s BookingService) ListBookings(f models.BookingFilter, p utils.Pagination) ([]models.Booking, int, error) {
	list, total, err := s.bookings().List(f, p.Limit, p.Skip, p.SortBy, p.SortOrder)
	if err != nil {
		return nil, 0, domain.InternalError{Err: err}
	}
	if len(list) == 0 {
		return nil, 0, domain.NotFoundError{Resource: "bookings"}
	}
	return list, total, nil
}

type BookingUpdate struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

func (s BookingService) UpdateBooking(id int64, upd BookingUpdate) (models.Booking, error) {
	existing, err := s.GetBooking(id)
	if err != nil {
		return models.Booking{}, err
	}

	if upd.Status != nil {
		if !validBookingStatus(*upd.Status) {
			return models.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown booking status"}
		}
		if err := s.bookings().UpdateStatus(id, *upd.Status); err != nil {
			return models.Booking{}, domain.InternalError{Err: err}
		}
	}
	if upd.PaymentStatus != nil {
		if *upd.PaymentStatus == models.PaymentStatusRefunded &&
			existing.PaymentStatus != models.PaymentStatusRefunded &&
			existing.PaymentIntentID != "" {
			refunder, ok := s.Card.(interface{ Refund(paymentIntentID string) error })
			if !ok {
				return models.Booking{}, domain.ValidationError{Field: "payment_status", Msg: "refunds are not supported for this gateway"}
			}
			if err := refunder.Refund(existing.PaymentIntentID); err != nil {
				return models.Booking{}, domain.PaymentFailedError{Gateway: "card", Msg: "refund failed", Err: err}
			}
		}
		if err := s.bookings().UpdatePaymentStatus(id, *upd.PaymentStatus); err != nil {
			return models.Booking{}, domain.InternalError{Err: err}
		}
	}
	return s.GetBooking(id)
}

func (s BookingService) UpdateBookingStatus(id int64, status string) (models.Booking, error) {
	return s.UpdateBooking(id, BookingUpdate{Status: &status})
}

func (s BookingService) DeleteBooking(id int64) error {
	if _, err := s.GetBooking(id); err != nil {
		return err
	}
	if err := s.bookings().Delete(id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func validBookingStatus(status string) bool {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		return true
	}
	return false
}
