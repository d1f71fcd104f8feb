package models

const (
	PaymentGatewayPayPal    = "PAYPAL"
	PaymentGatewayGooglePay = "GOOGLE_PAY"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// CartLine is one (event, quantity) pair inside a booking request.
type CartLine struct {
	EventID  int64 `json:"event_id"`
	Quantity int   `json:"quantity"`
}

type Booking struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	TotalPrice      float64    `json:"total_price"`
	PaymentGateway  string     `json:"payment_gateway"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	PaymentIntentID string     `json:"payment_intent_id,omitempty"`
	Cart            []CartLine `json:"booking_cart"`
	CreatedAt       string     `json:"created_at,omitempty"`
	UpdatedAt       string     `json:"updated_at,omitempty"`
}

type BookingFilter struct {
	UserID int64
	Status string
}
