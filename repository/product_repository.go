package repository

import (
	"sort"
	"sync"

	"github.com/apimatic/paypal-sample-app/models"
)

// ProductRepository is the in-memory product catalog. Products are never
// updated or deleted once created.
type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id string) (*models.Product, bool)
	// List returns all products sorted by creation time, newest first.
	List() []*models.Product
}

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewMemoryProductRepository creates an empty in-memory catalog.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]models.Product),
	}
}

func (r *memoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepository) FindByID(id string) (*models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (r *memoryProductRepository) List() []*models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Product, 0, len(r.products))
	for id := range r.products {
		p := r.products[id]
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
