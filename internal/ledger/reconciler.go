// Package ledger holds the core bookkeeping logic: applying completed
// orders to product sales counters and deriving invoice documents.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/store"
)

// Reconciler applies an order's line items to product sales counters
// when the order transitions to completed.
type Reconciler struct {
	mu       sync.Mutex
	products *store.ProductStore
	orders   *store.OrderStore
}

// NewReconciler creates a Reconciler over the given stores.
func NewReconciler(products *store.ProductStore, orders *store.OrderStore) *Reconciler {
	return &Reconciler{
		products: products,
		orders:   orders,
	}
}

// Complete transitions an open order to completed and applies its items
// to the product counters. The reconciler lock is held for the entire
// pass, so the read-modify-write on the counters is atomic per order.
//
// All items are resolved before anything is applied: if any product
// reference fails to resolve, nothing is applied and the order stays
// open. Completing an already-completed order is rejected — counters
// never double-count.
func (r *Reconciler) Complete(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, err := r.orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusCompleted {
		return nil, domain.ErrOrderAlreadyCompleted
	}

	// Resolve every reference first. Products are never deleted in this
	// system, but the referential contract is checked regardless.
	for _, item := range order.Items {
		if !r.products.Exists(item.ProductID) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductUnresolved, item.ProductID)
		}
	}

	// Apply all items. Item order does not affect the resulting totals.
	for _, item := range order.Items {
		qty := item.Quantity
		_ = r.products.Update(item.ProductID, func(p *domain.Product) {
			p.QuantitySold += qty
			p.TotalAmount += p.UnitPrice * qty
		})
	}

	now := time.Now().UTC()
	order.Status = domain.OrderStatusCompleted
	order.CompletedAt = &now
	return order, nil
}
