package controllers

import (
	"net/http"

	"github.com/apimatic/paypal-sample-app/services"
	"github.com/gin-gonic/gin"
)

// SetupController renders and handles the PayPal credentials form.
type SetupController struct {
	service   services.SetupService
	validator *RequestValidator
}

// NewSetupController creates a new SetupController.
func NewSetupController(service services.SetupService, validator *RequestValidator) *SetupController {
	return &SetupController{service: service, validator: validator}
}

// ShowForm handles GET /setup, prefilling the client id when credentials
// are already configured.
func (sc *SetupController) ShowForm(c *gin.Context) {
	data := gin.H{"Error": "", "ClientID": "", "Validated": false}
	if creds, ok := sc.service.Current(); ok {
		data["ClientID"] = creds.ClientID
		data["Validated"] = creds.Validated
	}
	c.HTML(http.StatusOK, "setup.html", data)
}

// Submit handles POST /setup. Validation failures re-render the form with
// the operator's input preserved; success redirects to the dashboard.
func (sc *SetupController) Submit(c *gin.Context) {
	form, err := sc.validator.ParseSetupForm(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "setup.html", gin.H{
			"Error":     err.Error(),
			"ClientID":  form.ClientID,
			"Validated": false,
		})
		return
	}

	if svcErr := sc.service.Configure(c.Request.Context(), form.ClientID, form.ClientSecret); svcErr != nil {
		c.HTML(svcErr.StatusCode, "setup.html", gin.H{
			"Error":     svcErr.Message,
			"ClientID":  form.ClientID,
			"Validated": false,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
