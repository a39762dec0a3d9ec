package controllers

import (
	"net/http"

	"github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-gonic/gin"
)

// CheckoutController exposes the order create/capture JSON API consumed by
// the PayPal buttons on the checkout page.
type CheckoutController struct {
	service services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(service services.CheckoutService) *CheckoutController {
	return &CheckoutController{service: service}
}

type createOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type captureOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// CreateOrder handles POST /api/orders.
func (cc *CheckoutController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	result, svcErr := cc.service.CreateOrder(c.Request.Context(), req.ProductID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CaptureOrder handles POST /api/orders/:orderID/capture.
func (cc *CheckoutController) CaptureOrder(c *gin.Context) {
	orderID := c.Param("orderID")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
		return
	}

	var req captureOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	result, svcErr := cc.service.CaptureOrder(c.Request.Context(), orderID, req.ProductID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
