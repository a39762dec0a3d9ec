package routes

import (
	"time"

	"github.com/apimatic/paypal-sample-app/controllers"
	"github.com/apimatic/paypal-sample-app/middleware"
	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Controllers bundles everything route registration needs.
type Controllers struct {
	Setup      *controllers.SetupController
	Storefront *controllers.StorefrontController
	Checkout   *controllers.CheckoutController
	Uploads    *controllers.UploadController
}

// Register wires all routes onto the engine.
func Register(r *gin.Engine, c Controllers, credentials repository.CredentialStore) {
	// Credentials setup (always reachable)
	r.GET("/setup", c.Setup.ShowForm)
	r.POST("/setup", c.Setup.Submit)

	// Operator pages, gated on configured credentials
	operator := r.Group("/")
	operator.Use(middleware.RequireSetup(credentials))
	{
		operator.GET("/", c.Storefront.Dashboard)
		operator.GET("/products/new", c.Storefront.NewProductForm)
		operator.POST("/products", c.Storefront.CreateProduct)
	}

	// Buyer pages
	r.GET("/checkout/:productID", c.Storefront.Checkout)
	r.GET("/confirmation/:orderID", c.Storefront.Confirmation)
	r.GET("/uploads/:imageID", c.Uploads.Serve)

	// Checkout API used by the PayPal buttons
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rate.Every(time.Minute/60), 20))
	{
		api.POST("/orders", c.Checkout.CreateOrder)
		api.POST("/orders/:orderID/capture", c.Checkout.CaptureOrder)
	}
}
