package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apimatic/paypal-sample-app/models"
	"github.com/apimatic/paypal-sample-app/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRequireSetupRedirectsWhenUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryCredentialStore()

	r := gin.New()
	r.Use(RequireSetup(store))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/setup", w.Header().Get("Location"))
}

func TestRequireSetupPassesWhenValidated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryCredentialStore()
	store.Set(models.Credentials{ClientID: "c", ClientSecret: "s", Validated: true})

	r := gin.New()
	r.Use(RequireSetup(store))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(rate.Limit(0), 2))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
