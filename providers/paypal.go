package providers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/apimatic/paypal-sample-app/models"
)

// SandboxBaseURL is the PayPal Sandbox REST endpoint.
const SandboxBaseURL = "https://api-m.sandbox.paypal.com"

// tokenExpirySlack refreshes access tokens slightly before PayPal's
// reported expiry to avoid racing the deadline.
const tokenExpirySlack = 60 * time.Second

// PayPalProvider implements PaymentProvider against PayPal's Orders v2 API.
type PayPalProvider struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token *cachedToken
}

type cachedToken struct {
	credentialKey string
	accessToken   string
	expiresAt     time.Time
}

// credentialKey fingerprints a credential pair so the token cache misses
// whenever either half changes. The secret is hashed, never stored.
func credentialKey(clientID, clientSecret string) string {
	sum := sha256.Sum256([]byte(clientID + "\x00" + clientSecret))
	return hex.EncodeToString(sum[:])
}

// NewPayPalProvider creates a provider against the given base URL; pass
// SandboxBaseURL outside of tests.
func NewPayPalProvider(baseURL string) *PayPalProvider {
	return &PayPalProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- PayPal auth structs ----

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// VerifyCredentials fetches an access token, which is PayPal's cheapest
// way to prove a client id/secret pair is live. The token cache is
// bypassed so a stale token can never vouch for a bad pair.
func (p *PayPalProvider) VerifyCredentials(ctx context.Context, clientID, clientSecret string) error {
	_, err := p.fetchToken(ctx, clientID, clientSecret)
	return err
}

// CreateOrder creates a PayPal order and returns its full representation.
func (p *PayPalProvider) CreateOrder(ctx context.Context, clientID, clientSecret string, req *models.PayPalOrderRequest) (*models.PayPalOrder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}
	return p.doOrderCall(ctx, clientID, clientSecret, "/v2/checkout/orders", body)
}

// CaptureOrder captures an approved order.
func (p *PayPalProvider) CaptureOrder(ctx context.Context, clientID, clientSecret, orderID string) (*models.PayPalOrder, error) {
	path := "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"
	return p.doOrderCall(ctx, clientID, clientSecret, path, []byte("{}"))
}

func (p *PayPalProvider) doOrderCall(ctx context.Context, clientID, clientSecret, path string, body []byte) (*models.PayPalOrder, error) {
	token, err := p.accessToken(ctx, clientID, clientSecret)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Prefer", "return=representation")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paypal request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read paypal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var order models.PayPalOrder
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("decode paypal response: %w", err)
	}
	return &order, nil
}

// accessToken returns a cached OAuth2 token for the given credentials,
// fetching a fresh one when the cache is cold, expired, or the operator
// replaced either half of the pair.
func (p *PayPalProvider) accessToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	key := credentialKey(clientID, clientSecret)
	p.mu.Lock()
	if t := p.token; t != nil && t.credentialKey == key && time.Now().Before(t.expiresAt) {
		token := t.accessToken
		p.mu.Unlock()
		return token, nil
	}
	p.mu.Unlock()

	return p.fetchToken(ctx, clientID, clientSecret)
}

// fetchToken always hits the token endpoint and refreshes the cache.
func (p *PayPalProvider) fetchToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	httpReq.SetBasicAuth(clientID, clientSecret)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("paypal token request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(respBody, &tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Body: "empty access token"}
	}

	p.mu.Lock()
	p.token = &cachedToken{
		credentialKey: credentialKey(clientID, clientSecret),
		accessToken:   tok.AccessToken,
		expiresAt:     time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySlack),
	}
	p.mu.Unlock()

	return tok.AccessToken, nil
}
