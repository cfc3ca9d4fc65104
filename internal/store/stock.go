package store

import (
	"strings"
	"sync"

	"github.com/nvilela/salesledger/internal/domain"
)

// StockStore is a thread-safe in-memory store for inventory items.
// Ids are sequential integers assigned by the store; insertion order
// is preserved for listing.
type StockStore struct {
	mu     sync.RWMutex
	items  map[int64]*domain.StockItem
	order  []int64 // item ids in insertion order
	nextID int64
}

// NewStockStore creates an empty StockStore.
func NewStockStore() *StockStore {
	return &StockStore{
		items: make(map[int64]*domain.StockItem),
	}
}

// Create assigns ids to the items and adds them to the store as one
// batch under a single lock acquisition.
func (s *StockStore) Create(items []*domain.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.nextID++
		item.ID = s.nextID
		s.items[item.ID] = item
		s.order = append(s.order, item.ID)
	}
}

// Get retrieves an item by id. It returns
// domain.ErrStockItemNotFound if the item does not exist.
func (s *StockStore) Get(id int64) (*domain.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrStockItemNotFound
	}
	return item, nil
}

// Update applies the mutator to the item with the given id under the
// store's write lock. It returns domain.ErrStockItemNotFound if the
// item does not exist.
func (s *StockStore) Update(id int64, mutate func(*domain.StockItem)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.ErrStockItemNotFound
	}
	mutate(item)
	return nil
}

// Delete removes an item by id. It returns
// domain.ErrStockItemNotFound if the item does not exist.
func (s *StockStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrStockItemNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns items in insertion order. If query is non-empty, only
// items whose name contains it (case-insensitive) are included.
func (s *StockStore) List(query string) []*domain.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)

	result := make([]*domain.StockItem, 0)
	for _, id := range s.order {
		item := s.items[id]
		if q != "" && !strings.Contains(strings.ToLower(item.Name), q) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// ListLowStock returns items at or below their reorder threshold, in
// insertion order.
func (s *StockStore) ListLowStock() []*domain.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.StockItem, 0)
	for _, id := range s.order {
		if item := s.items[id]; item.LowStock() {
			result = append(result, item)
		}
	}
	return result
}
