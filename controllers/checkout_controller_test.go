package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeCheckoutService implements services.CheckoutService.
type fakeCheckoutService struct {
	createResult  *services.OrderResult
	createErr     *services.ServiceError
	captureResult *services.CaptureResult
	captureErr    *services.ServiceError

	lastProductID string
	lastOrderID   string
}

func (f *fakeCheckoutService) CreateOrder(ctx context.Context, productID string) (*services.OrderResult, *services.ServiceError) {
	f.lastProductID = productID
	return f.createResult, f.createErr
}

func (f *fakeCheckoutService) CaptureOrder(ctx context.Context, orderID, productID string) (*services.CaptureResult, *services.ServiceError) {
	f.lastOrderID = orderID
	f.lastProductID = productID
	return f.captureResult, f.captureErr
}

func setupCheckoutRouter(svc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := NewCheckoutController(svc)
	r.POST("/api/orders", cc.CreateOrder)
	r.POST("/api/orders/:orderID/capture", cc.CaptureOrder)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	svc := &fakeCheckoutService{
		createResult: &services.OrderResult{ID: "ORDER1", Status: "CREATED"},
	}
	r := setupCheckoutRouter(svc)

	w := postJSON(r, "/api/orders", gin.H{"productId": "widget-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "widget-1", svc.lastProductID)

	var resp services.OrderResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORDER1", resp.ID)
	assert.Equal(t, "CREATED", resp.Status)
}

func TestCreateOrderEndpointMissingProductID(t *testing.T) {
	svc := &fakeCheckoutService{}
	r := setupCheckoutRouter(svc)

	w := postJSON(r, "/api/orders", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.lastProductID)
}

func TestCreateOrderEndpointServiceError(t *testing.T) {
	svc := &fakeCheckoutService{
		createErr: &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"},
	}
	r := setupCheckoutRouter(svc)

	w := postJSON(r, "/api/orders", gin.H{"productId": "missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Product not found", resp["error"])
}

func TestCaptureOrderEndpoint(t *testing.T) {
	svc := &fakeCheckoutService{
		captureResult: &services.CaptureResult{
			ID:         "ORDER1",
			Status:     "COMPLETED",
			PayerEmail: "buyer@example.com",
			PayerName:  "Jane Buyer",
			CaptureID:  "CAP1",
		},
	}
	r := setupCheckoutRouter(svc)

	w := postJSON(r, "/api/orders/ORDER1/capture", gin.H{"productId": "widget-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ORDER1", svc.lastOrderID)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "COMPLETED", resp["status"])
	assert.Equal(t, "buyer@example.com", resp["payerEmail"])
	assert.Equal(t, "Jane Buyer", resp["payerName"])
	assert.Equal(t, "CAP1", resp["captureId"])
}

func TestCaptureOrderEndpointGatewayError(t *testing.T) {
	svc := &fakeCheckoutService{
		captureErr: &services.ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: "Payment provider rejected the request"},
	}
	r := setupCheckoutRouter(svc)

	w := postJSON(r, "/api/orders/ORDER1/capture", gin.H{"productId": "widget-1"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
