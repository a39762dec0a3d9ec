package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/apimatic/paypal-sample-app/providers"
	"github.com/apimatic/paypal-sample-app/repository"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// maxDescriptionLen is PayPal's purchase unit description limit. Longer
// product descriptions are truncated, not rejected.
const maxDescriptionLen = 127

// OrderResult is returned from order creation.
type OrderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CaptureResult is returned from order capture for any reported status;
// the caller decides whether a non-terminal status counts as failure.
type CaptureResult struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	PayerEmail string `json:"payerEmail"`
	PayerName  string `json:"payerName"`
	CaptureID  string `json:"captureId"`
}

// CheckoutService coordinates product lookup, gateway calls, and ledger
// writes for the order create/capture lifecycle.
type CheckoutService interface {
	CreateOrder(ctx context.Context, productID string) (*OrderResult, *ServiceError)
	CaptureOrder(ctx context.Context, orderID, productID string) (*CaptureResult, *ServiceError)
}

type checkoutServiceImpl struct {
	credentials repository.CredentialStore
	products    repository.ProductRepository
	ledger      repository.PaymentLedger
	provider    providers.PaymentProvider
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	credentials repository.CredentialStore,
	products repository.ProductRepository,
	ledger repository.PaymentLedger,
	provider providers.PaymentProvider,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		credentials: credentials,
		products:    products,
		ledger:      ledger,
		provider:    provider,
		logger:      logger,
	}
}

// CreateOrder creates a PayPal order for a single unit of the given
// product. Nothing is written to the ledger here; that only happens at
// capture.
func (s *checkoutServiceImpl) CreateOrder(ctx context.Context, productID string) (*OrderResult, *ServiceError) {
	creds, svcErr := s.validatedCredentials()
	if svcErr != nil {
		return nil, svcErr
	}

	product, ok := s.products.FindByID(productID)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
	}

	description := product.Description
	if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen])
	}

	amount := &models.PayPalAmount{
		CurrencyCode: product.Currency,
		Value:        product.Price,
	}
	req := &models.PayPalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []models.PayPalPurchaseUnit{
			{
				Description: description,
				Amount: &models.PayPalAmount{
					CurrencyCode: product.Currency,
					Value:        product.Price,
					Breakdown: &models.PayPalBreakdown{
						ItemTotal: &models.PayPalAmount{CurrencyCode: product.Currency, Value: product.Price},
					},
				},
				Items: []models.PayPalItem{
					{Name: product.Name, Quantity: "1", UnitAmount: amount},
				},
			},
		},
	}

	order, err := s.provider.CreateOrder(ctx, creds.ClientID, creds.ClientSecret, req)
	if err != nil {
		return nil, s.gatewayError("CreateOrder", err)
	}

	s.logger.Info("PayPal order created",
		zap.String("order_id", order.ID),
		zap.String("product_id", productID),
		zap.String("status", order.Status),
	)

	return &OrderResult{ID: order.ID, Status: order.Status}, nil
}

// CaptureOrder captures an approved PayPal order and, when the gateway
// reports the terminal COMPLETED status, appends one record to the ledger.
func (s *checkoutServiceImpl) CaptureOrder(ctx context.Context, orderID, productID string) (*CaptureResult, *ServiceError) {
	creds, svcErr := s.validatedCredentials()
	if svcErr != nil {
		return nil, svcErr
	}

	order, err := s.provider.CaptureOrder(ctx, creds.ClientID, creds.ClientSecret, orderID)
	if err != nil {
		return nil, s.gatewayError("CaptureOrder", err)
	}

	payerEmail, payerName := extractPayer(order)
	captureID, amountValue, amountCurrency := extractLastCapture(order)

	result := &CaptureResult{
		ID:         order.ID,
		Status:     order.Status,
		PayerEmail: payerEmail,
		PayerName:  payerName,
		CaptureID:  captureID,
	}

	if order.Status != models.PaymentStatusCompleted {
		s.logger.Warn("Capture returned non-terminal status",
			zap.String("order_id", orderID),
			zap.String("status", order.Status),
		)
		return result, nil
	}

	productName := "Unknown product"
	product, productKnown := s.products.FindByID(productID)
	if productKnown {
		productName = product.Name
	}
	// Fall back to the listed price when the gateway omitted amounts.
	if amountValue == "" && productKnown {
		amountValue = product.Price
		amountCurrency = product.Currency
	}
	if amountValue == "" {
		s.logger.Warn("Capture completed without amounts",
			zap.String("order_id", order.ID),
			zap.String("product_id", productID),
		)
	}

	s.ledger.Append(models.PaymentRecord{
		OrderID:     order.ID,
		ProductID:   productID,
		ProductName: productName,
		PayerEmail:  payerEmail,
		PayerName:   payerName,
		Amount:      amountValue,
		Currency:    amountCurrency,
		Status:      order.Status,
		CaptureID:   captureID,
		CompletedAt: time.Now().UTC(),
	})

	s.logger.Info("Payment captured",
		zap.String("order_id", order.ID),
		zap.String("product_id", productID),
		zap.String("capture_id", captureID),
	)

	return result, nil
}

// validatedCredentials returns the stored credentials or a configuration
// error when setup has not completed.
func (s *checkoutServiceImpl) validatedCredentials() (models.Credentials, *ServiceError) {
	creds, ok := s.credentials.Get()
	if !ok || !creds.Validated {
		return models.Credentials{}, &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    "PayPal credentials not configured",
		}
	}
	return creds, nil
}

// gatewayError maps a provider failure to a ServiceError. The raw gateway
// body stays in the server log; clients only see a generic message with
// the gateway's status code.
func (s *checkoutServiceImpl) gatewayError(op string, err error) *ServiceError {
	var apiErr *providers.APIError
	if errors.As(err, &apiErr) {
		s.logger.Error("PayPal API error",
			zap.String("op", op),
			zap.Int("status", apiErr.StatusCode),
			zap.String("body", apiErr.Body),
		)
		return &ServiceError{StatusCode: apiErr.StatusCode, Message: "Payment provider rejected the request"}
	}
	s.logger.Error("PayPal call failed", zap.String("op", op), zap.Error(err))
	return &ServiceError{StatusCode: http.StatusBadGateway, Message: "Failed to reach payment provider"}
}

// extractPayer pulls the buyer's email and display name from a capture
// response, preferring the payment_source block over the legacy payer one.
func extractPayer(order *models.PayPalOrder) (email, name string) {
	var info *models.PayPalPayerInfo
	if order.PaymentSource != nil && order.PaymentSource.PayPal != nil {
		info = order.PaymentSource.PayPal
	} else if order.Payer != nil {
		info = order.Payer
	}
	if info == nil {
		return "", ""
	}
	if info.Name != nil {
		parts := make([]string, 0, 2)
		if info.Name.GivenName != "" {
			parts = append(parts, info.Name.GivenName)
		}
		if info.Name.Surname != "" {
			parts = append(parts, info.Name.Surname)
		}
		name = strings.Join(parts, " ")
	}
	return info.EmailAddress, name
}

// extractLastCapture walks every purchase unit and every capture within
// each, keeping the last one seen. Multiple captures on one order are not
// expected from this flow; last-wins is a simplification, not a business
// rule.
func extractLastCapture(order *models.PayPalOrder) (captureID, amountValue, amountCurrency string) {
	for _, pu := range order.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, capture := range pu.Payments.Captures {
			captureID = capture.ID
			if capture.Amount != nil {
				amountValue = capture.Amount.Value
				amountCurrency = capture.Amount.CurrencyCode
			}
		}
	}
	return captureID, amountValue, amountCurrency
}
