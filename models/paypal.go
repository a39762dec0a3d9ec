package models

// Wire types for the PayPal Orders v2 API. Only the fields this app reads
// or writes are modeled; everything else in PayPal's responses is ignored
// by json decoding.

// PayPalOrderRequest is the request sent to PayPal to create an order.
type PayPalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []PayPalPurchaseUnit `json:"purchase_units"`
}

// PayPalPurchaseUnit carries the amount and items for one order.
type PayPalPurchaseUnit struct {
	Description string          `json:"description,omitempty"`
	Amount      *PayPalAmount   `json:"amount,omitempty"`
	Items       []PayPalItem    `json:"items,omitempty"`
	Payments    *PayPalPayments `json:"payments,omitempty"` // response only
}

// PayPalAmount is a currency/value pair.
type PayPalAmount struct {
	CurrencyCode string           `json:"currency_code"`
	Value        string           `json:"value"`
	Breakdown    *PayPalBreakdown `json:"breakdown,omitempty"`
}

// PayPalBreakdown itemizes the order total. PayPal requires item_total to
// equal the sum of item unit amounts.
type PayPalBreakdown struct {
	ItemTotal *PayPalAmount `json:"item_total,omitempty"`
}

// PayPalItem is a single line item.
type PayPalItem struct {
	Name       string        `json:"name"`
	Quantity   string        `json:"quantity"`
	UnitAmount *PayPalAmount `json:"unit_amount,omitempty"`
}

// PayPalPayments holds the captures recorded against a purchase unit.
type PayPalPayments struct {
	Captures []PayPalCapture `json:"captures,omitempty"`
}

// PayPalCapture is one settled capture.
type PayPalCapture struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Amount *PayPalAmount `json:"amount,omitempty"`
}

// PayPalName is a buyer name as PayPal reports it; either part may be
// missing.
type PayPalName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

// PayPalPayerInfo is the payer block inside payment_source.paypal.
type PayPalPayerInfo struct {
	EmailAddress string      `json:"email_address"`
	Name         *PayPalName `json:"name,omitempty"`
}

// PayPalPaymentSource wraps the funding source used for an order.
type PayPalPaymentSource struct {
	PayPal *PayPalPayerInfo `json:"paypal,omitempty"`
}

// PayPalOrder is an order as returned by the create and capture calls.
type PayPalOrder struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []PayPalPurchaseUnit `json:"purchase_units,omitempty"`
	PaymentSource *PayPalPaymentSource `json:"payment_source,omitempty"`
	Payer         *PayPalPayerInfo     `json:"payer,omitempty"`
}
