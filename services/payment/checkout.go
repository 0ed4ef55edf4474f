package payment

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"venuehive/config"
	"venuehive/models"
	"venuehive/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// spaceFetcher is the slice of the space repo the payment flow needs.
type spaceFetcher interface {
	GetByID(id string) (*models.Space, error)
}

// DefaultPaymentService implements PaymentService against Stripe Checkout.
type DefaultPaymentService struct {
	BookingRepo bookingRepository
	SpaceRepo   spaceFetcher
	Notifier    changeNotifier
}

// StartCheckout creates a Stripe Checkout session for the given space and
// price. The booking id rides along in the session metadata; the session URL
// is handed back for the caller to redirect to.
func (s *DefaultPaymentService) StartCheckout(actor models.Actor, input CheckoutInput) (string, error) {
	if input.Price <= 0 {
		return "", errors.New("checkout price must be positive")
	}
	space, err := s.SpaceRepo.GetByID(input.SpaceID)
	if err != nil {
		return "", err
	}

	name := space.Title
	if input.Days > 1 {
		name = fmt.Sprintf("%s (%d days)", space.Title, input.Days)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(actor.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(config.AppConfig.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(input.Price * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL + "?session_ref={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL),
	}
	params.AddMetadata("space_id", input.SpaceID)
	params.AddMetadata("client_id", actor.ID)
	if input.BookingID != "" {
		params.AddMetadata("booking_id", input.BookingID)
	}
	if input.Days > 0 {
		params.AddMetadata("days", strconv.Itoa(input.Days))
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	if sess.URL == "" {
		return "", errors.New("payment provider returned no checkout URL")
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("spaceID", input.SpaceID),
		zap.String("clientID", actor.ID),
		zap.String("sessionID", sess.ID))
	return sess.URL, nil
}
