package providers

import (
	"context"
	"fmt"

	"github.com/apimatic/paypal-sample-app/models"
)

// PaymentProvider abstracts the payment gateway used for order creation
// and capture. Credentials are passed per call because the operator can
// replace them at any time through the setup form.
type PaymentProvider interface {
	// VerifyCredentials probes the gateway with the given credentials and
	// returns an error when they are rejected.
	VerifyCredentials(ctx context.Context, clientID, clientSecret string) error
	CreateOrder(ctx context.Context, clientID, clientSecret string, req *models.PayPalOrderRequest) (*models.PayPalOrder, error)
	CaptureOrder(ctx context.Context, clientID, clientSecret, orderID string) (*models.PayPalOrder, error)
}

// APIError is a gateway rejection. Body is the raw error payload; it is
// logged server-side only and never returned to buyers.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal api error: status %d: %s", e.StatusCode, e.Body)
}
