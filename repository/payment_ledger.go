package repository

import (
	"sort"
	"sync"

	"github.com/apimatic/paypal-sample-app/models"
)

// PaymentLedger is the append-only record of completed payments. Records
// are never mutated or removed.
type PaymentLedger interface {
	Append(record models.PaymentRecord)
	FindByOrderID(orderID string) (*models.PaymentRecord, bool)
	// List returns all records sorted by completion time, newest first.
	List() []models.PaymentRecord
	// CountByProduct returns the number of completed payments for a product.
	CountByProduct(productID string) int
	// TotalRevenueCents sums captured amounts over all completed records.
	TotalRevenueCents() int64
}

type memoryPaymentLedger struct {
	mu      sync.RWMutex
	records []models.PaymentRecord
}

// NewMemoryPaymentLedger creates an empty in-memory ledger.
func NewMemoryPaymentLedger() PaymentLedger {
	return &memoryPaymentLedger{}
}

func (l *memoryPaymentLedger) Append(record models.PaymentRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

func (l *memoryPaymentLedger) FindByOrderID(orderID string) (*models.PaymentRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.records {
		if l.records[i].OrderID == orderID {
			rec := l.records[i]
			return &rec, true
		}
	}
	return nil, false
}

func (l *memoryPaymentLedger) List() []models.PaymentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.PaymentRecord, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out
}

func (l *memoryPaymentLedger) CountByProduct(productID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for i := range l.records {
		if l.records[i].ProductID == productID && l.records[i].Status == models.PaymentStatusCompleted {
			count++
		}
	}
	return count
}

func (l *memoryPaymentLedger) TotalRevenueCents() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total int64
	for i := range l.records {
		if l.records[i].Status != models.PaymentStatusCompleted {
			continue
		}
		cents, err := models.PriceToCents(l.records[i].Amount)
		if err != nil {
			continue
		}
		total += cents
	}
	return total
}
