package models

import "time"

// PaymentStatusCompleted is PayPal's terminal order status. Only captures
// reporting this status are recorded in the ledger.
const PaymentStatusCompleted = "COMPLETED"

// PaymentRecord is one completed payment. Records are append-only;
// ProductName, Amount and Currency are snapshots taken at capture time and
// never track later catalog changes.
type PaymentRecord struct {
	OrderID     string    `json:"order_id"` // PayPal order id
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	PayerEmail  string    `json:"payer_email"`
	PayerName   string    `json:"payer_name"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CaptureID   string    `json:"capture_id"`
	CompletedAt time.Time `json:"completed_at"`
}
