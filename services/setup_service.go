package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/apimatic/paypal-sample-app/providers"
	"github.com/apimatic/paypal-sample-app/repository"
	"go.uber.org/zap"
)

// SetupService validates and stores the merchant's PayPal credentials.
type SetupService interface {
	// Configure probes the gateway with the submitted credentials and
	// replaces the stored set when the probe succeeds.
	Configure(ctx context.Context, clientID, clientSecret string) *ServiceError
	// Current returns the stored credentials, if any.
	Current() (models.Credentials, bool)
}

type setupServiceImpl struct {
	credentials repository.CredentialStore
	provider    providers.PaymentProvider
	logger      *zap.Logger
}

// NewSetupService creates a new SetupService.
func NewSetupService(credentials repository.CredentialStore, provider providers.PaymentProvider, logger *zap.Logger) SetupService {
	return &setupServiceImpl{
		credentials: credentials,
		provider:    provider,
		logger:      logger,
	}
}

func (s *setupServiceImpl) Configure(ctx context.Context, clientID, clientSecret string) *ServiceError {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Client ID and secret are required"}
	}

	if err := s.provider.VerifyCredentials(ctx, clientID, clientSecret); err != nil {
		var apiErr *providers.APIError
		if errors.As(err, &apiErr) {
			s.logger.Warn("Credential probe rejected",
				zap.Int("status", apiErr.StatusCode),
				zap.String("body", apiErr.Body),
			)
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "PayPal rejected these credentials"}
		}
		s.logger.Error("Credential probe failed", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusBadGateway, Message: "Could not reach PayPal to verify credentials"}
	}

	s.credentials.Set(models.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Environment:  "sandbox",
		Validated:    true,
	})

	s.logger.Info("PayPal credentials configured", zap.String("client_id", clientID))
	return nil
}

func (s *setupServiceImpl) Current() (models.Credentials, bool) {
	return s.credentials.Get()
}
