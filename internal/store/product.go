package store

import (
	"sync"

	"github.com/nvilela/salesledger/internal/domain"
)

// ProductStore is a thread-safe in-memory store for the product catalog.
// Insertion order is preserved so listings are deterministic.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string // product ids in insertion order
}

// NewProductStore creates an empty ProductStore.
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[string]*domain.Product),
	}
}

// Create adds a product to the store. It returns
// domain.ErrDuplicateProduct if the id is already taken.
func (s *ProductStore) Create(p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; exists {
		return domain.ErrDuplicateProduct
	}
	s.products[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

// Get retrieves a product by id. It returns
// domain.ErrProductNotFound if the product does not exist.
func (s *ProductStore) Get(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// Exists reports whether a product with the given id is in the store.
func (s *ProductStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.products[id]
	return ok
}

// Update applies the mutator to the product with the given id under the
// store's write lock. It returns domain.ErrProductNotFound if the
// product does not exist. The mutator must not call back into the store.
func (s *ProductStore) Update(id string, mutate func(*domain.Product)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	mutate(p)
	return nil
}

// List returns all products in insertion order.
func (s *ProductStore) List() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id])
	}
	return result
}
