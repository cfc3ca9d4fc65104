package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/nvilela/salesledger/internal/domain"
)

// OrderStore is a thread-safe in-memory store for sales orders, with a
// primary index by order_id and a B-tree ordered by allocation sequence
// so listings come back in creation order.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	bySeq  *btree.BTreeG[*domain.Order]
	nextID int64
}

// seqLess orders entries by allocation sequence ascending.
func seqLess(a, b *domain.Order) bool {
	return a.Seq < b.Seq
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	const degree = 32
	return &OrderStore{
		orders: make(map[string]*domain.Order),
		bySeq:  btree.NewG[*domain.Order](degree, seqLess),
	}
}

// Create assigns the next sequential order id ("O-<n>") to the order and
// adds it to the store. Ids are never reused, even conceptually across
// deletes — the counter only moves forward.
func (s *OrderStore) Create(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	o.Seq = s.nextID
	o.OrderID = fmt.Sprintf("O-%d", o.Seq)
	s.orders[o.OrderID] = o
	s.bySeq.ReplaceOrInsert(o)
}

// Get retrieves an order by id. It returns
// domain.ErrOrderNotFound if the order does not exist.
func (s *OrderStore) Get(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// List returns orders in creation order. If status is non-nil, only
// orders with that status are included. If query is non-empty, only
// orders whose id or customer contains it (case-insensitive) are
// included.
func (s *OrderStore) List(status *domain.OrderStatus, query string) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)

	result := make([]*domain.Order, 0)
	s.bySeq.Ascend(func(o *domain.Order) bool {
		if status != nil && o.Status != *status {
			return true
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.OrderID), q) &&
			!strings.Contains(strings.ToLower(o.Customer), q) {
			return true
		}
		result = append(result, o)
		return true
	})
	return result
}

// Len returns the number of orders in the store.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
