package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/store"
)

// Format builds the invoice document for a completed order from the
// current product snapshot. It has no side effects: rendering the
// document to PDF or anything else is the caller's concern.
//
// Returns domain.ErrOrderNotCompleted for open orders and
// domain.ErrProductUnresolved if a line item's product cannot be found.
func Format(order *domain.Order, products *store.ProductStore) (*domain.InvoiceDocument, error) {
	if order.Status != domain.OrderStatusCompleted {
		return nil, domain.ErrOrderNotCompleted
	}

	lines := make([]domain.InvoiceLine, 0, len(order.Items))
	var total int64
	for _, item := range order.Items {
		p, err := products.Get(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductUnresolved, item.ProductID)
		}
		lineTotal := p.UnitPrice * item.Quantity
		lines = append(lines, domain.InvoiceLine{
			ProductID:   p.ID,
			Description: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.UnitPrice,
			LineTotal:   lineTotal,
		})
		total += lineTotal
	}

	return &domain.InvoiceDocument{
		InvoiceID: uuid.New().String(),
		OrderID:   order.OrderID,
		Customer:  order.Customer,
		Status:    order.Status,
		Lines:     lines,
		Total:     total,
		IssuedAt:  time.Now().UTC(),
	}, nil
}
