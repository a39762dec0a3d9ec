package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront.
type Config struct {
	Port          string
	GinMode       string
	PayPalBaseURL string
	// Optional: pre-configure PayPal credentials at boot instead of using
	// the setup form.
	PayPalClientID     string
	PayPalClientSecret string
}

// LoadConfig reads configuration from the environment, loading a local
// .env file when present. All state is in-memory, so there is nothing
// else to configure.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		PayPalBaseURL:      getEnv("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),
		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
