package domain

import "time"

// OrderStatus represents the lifecycle state of a sales order.
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderItem is a single line of an order, referencing a product by id.
type OrderItem struct {
	ProductID string
	Quantity  int64
}

// Order represents a customer's requested line items. Orders are created
// open and move to completed exactly once; a completed order is immutable.
type Order struct {
	OrderID     string
	Seq         int64 // allocation sequence, drives listing order
	Customer    string
	Items       []OrderItem
	Status      OrderStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TotalQuantity sums the quantities across all line items.
func (o *Order) TotalQuantity() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}
