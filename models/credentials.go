package models

// Credentials holds the merchant's PayPal REST API credentials. A single
// set is kept for the whole process; submitting the setup form again
// replaces it.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"` // never serialized
	Environment  string `json:"environment"` // always "sandbox" in this build
	Validated    bool   `json:"validated"`
}
