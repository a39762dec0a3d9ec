package controllers

import (
	"net/http"

	"github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-gonic/gin"
)

// StorefrontController renders the server-side pages: operator dashboard,
// product form, buyer checkout, and payment confirmation.
type StorefrontController struct {
	catalog   services.CatalogService
	setup     services.SetupService
	validator *RequestValidator
}

// NewStorefrontController creates a new StorefrontController.
func NewStorefrontController(catalog services.CatalogService, setup services.SetupService, validator *RequestValidator) *StorefrontController {
	return &StorefrontController{catalog: catalog, setup: setup, validator: validator}
}

// Dashboard handles GET /.
func (sf *StorefrontController) Dashboard(c *gin.Context) {
	data := sf.catalog.Dashboard()
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Products":     data.Products,
		"Payments":     data.Payments,
		"TotalRevenue": data.TotalRevenue,
	})
}

// NewProductForm handles GET /products/new.
func (sf *StorefrontController) NewProductForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_new.html", emptyProductForm())
}

func emptyProductForm() gin.H {
	return gin.H{"Error": "", "Name": "", "Description": "", "Price": "", "Currency": ""}
}

// CreateProduct handles POST /products.
func (sf *StorefrontController) CreateProduct(c *gin.Context) {
	req, err := sf.validator.ParseProductForm(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "product_new.html", gin.H{
			"Error":       err.Error(),
			"Name":        req.Name,
			"Description": req.Description,
			"Price":       req.Price,
			"Currency":    req.Currency,
		})
		return
	}

	product, svcErr := sf.catalog.CreateProduct(req)
	if svcErr != nil {
		c.HTML(svcErr.StatusCode, "product_new.html", gin.H{
			"Error":       svcErr.Message,
			"Name":        req.Name,
			"Description": req.Description,
			"Price":       req.Price,
			"Currency":    req.Currency,
		})
		return
	}

	c.HTML(http.StatusCreated, "product_created.html", gin.H{
		"Product":     product,
		"CheckoutURL": "/checkout/" + product.ID,
	})
}

// Checkout handles GET /checkout/:productID, the buyer-facing page that
// embeds the PayPal JS SDK.
func (sf *StorefrontController) Checkout(c *gin.Context) {
	product, svcErr := sf.catalog.GetProduct(c.Param("productID"))
	if svcErr != nil {
		c.HTML(svcErr.StatusCode, "error.html", gin.H{"Error": svcErr.Message})
		return
	}

	creds, ok := sf.setup.Current()
	if !ok || !creds.Validated {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "This store is not ready to accept payments yet"})
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Product":  product,
		"ClientID": creds.ClientID,
	})
}

// Confirmation handles GET /confirmation/:orderID, rendered from the
// ledger after a successful capture.
func (sf *StorefrontController) Confirmation(c *gin.Context) {
	record, svcErr := sf.catalog.GetPayment(c.Param("orderID"))
	if svcErr != nil {
		c.HTML(svcErr.StatusCode, "error.html", gin.H{"Error": svcErr.Message})
		return
	}
	c.HTML(http.StatusOK, "confirmation.html", gin.H{"Payment": record})
}
