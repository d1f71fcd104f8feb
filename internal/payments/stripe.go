package payments

import (
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/refund"
)

// StatusSucceeded is the payment intent status required before a booking is
// persisted.
const StatusSucceeded = "succeeded"

type PaymentIntent struct {
	ID     string
	Status string
}

// CardCharger is the card-payment seam the booking workflow depends on.
type CardCharger interface {
	CreatePaymentIntent(amount float64, paymentMethodID string) (PaymentIntent, error)
}

type StripeGateway struct{}

func NewStripeGateway(secretKey string) StripeGateway {
	stripe.Key = secretKey
	return StripeGateway{}
}

// CreatePaymentIntent confirms a charge immediately against the given payment
// method. Amounts are dollars; Stripe wants cents.
func (StripeGateway) CreatePaymentIntent(amount float64, paymentMethodID string) (PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(amount * 100))),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return PaymentIntent{}, err
	}
	return PaymentIntent{ID: pi.ID, Status: string(pi.Status)}, nil
}

func (StripeGateway) Refund(paymentIntentID string) error {
	_, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	})
	return err
}
