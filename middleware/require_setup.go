package middleware

import (
	"net/http"

	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/gin-gonic/gin"
)

// RequireSetup redirects operator pages to the setup form until validated
// PayPal credentials are configured.
func RequireSetup(credentials repository.CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := credentials.Get()
		if !ok || !creds.Validated {
			c.Redirect(http.StatusSeeOther, "/setup")
			c.Abort()
			return
		}
		c.Next()
	}
}
