package domain

import "time"

// InvoiceLine is a single charge on an invoice.
type InvoiceLine struct {
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   int64 // cents
	LineTotal   int64 // cents, UnitPrice × Quantity
}

// InvoiceDocument is the derived, read-only summary of a completed
// order's charges. It is a plain structure: rendering to PDF or any
// other format is the renderer collaborator's concern.
type InvoiceDocument struct {
	InvoiceID string
	OrderID   string
	Customer  string
	Status    OrderStatus
	Lines     []InvoiceLine
	Total     int64 // cents, Σ LineTotal
	IssuedAt  time.Time
}
