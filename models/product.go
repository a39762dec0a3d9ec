package models

import "time"

// Product is a sellable item. Products are immutable once created; ID is
// the sole lookup key used by checkout and order creation.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"` // decimal string, always two fraction digits
	Currency    string    `json:"currency"`
	ImageIDs    []string  `json:"image_ids"` // 0-5 stored image references, in upload order
	CreatedAt   time.Time `json:"created_at"`
}

// StoredImage is an uploaded product image held in process memory and
// served at /uploads/:id.
type StoredImage struct {
	ID          string
	ContentType string
	Data        []byte
}
