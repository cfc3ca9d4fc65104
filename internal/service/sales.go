package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/ledger"
	"github.com/nvilela/salesledger/internal/store"
)

// ValidOrderStatuses lists all valid order status values for validation.
var ValidOrderStatuses = map[domain.OrderStatus]bool{
	domain.OrderStatusOpen:      true,
	domain.OrderStatusCompleted: true,
}

// InvoiceRenderer exports an invoice document to an external format.
// The PDF renderer implements this; tests substitute their own.
type InvoiceRenderer interface {
	Render(doc *domain.InvoiceDocument) error
}

// SaleItemInput is a single requested line item in a sale.
type SaleItemInput struct {
	ProductID string
	Quantity  int64
}

// RecordSaleRequest represents the input for recording a sale.
type RecordSaleRequest struct {
	Customer string
	Items    []SaleItemInput
}

// SalesService handles sale recording, order completion, invoice
// generation, and order listing.
type SalesService struct {
	reconciler *ledger.Reconciler
	products   *store.ProductStore
	orders     *store.OrderStore
	renderer   InvoiceRenderer
}

// NewSalesService creates a new SalesService with the given dependencies.
// renderer may be nil, in which case invoices are generated but not
// exported.
func NewSalesService(
	reconciler *ledger.Reconciler,
	products *store.ProductStore,
	orders *store.OrderStore,
	renderer InvoiceRenderer,
) *SalesService {
	return &SalesService{
		reconciler: reconciler,
		products:   products,
		orders:     orders,
		renderer:   renderer,
	}
}

// RecordSale validates the request and creates an open order. Product
// counters are untouched here — they only move when the order completes.
func (s *SalesService) RecordSale(req RecordSaleRequest) (*domain.Order, error) {
	if req.Customer == "" {
		return nil, &domain.ValidationError{
			Message: "customer is required",
		}
	}
	if len(req.Customer) > 128 {
		return nil, &domain.ValidationError{
			Message: "customer must be at most 128 characters",
		}
	}
	if len(req.Items) == 0 {
		return nil, &domain.ValidationError{
			Message: "items must be a non-empty array",
		}
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		if item.ProductID == "" {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].product_id is required", i),
			}
		}
		if item.Quantity <= 0 {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].quantity must be a positive integer", i),
			}
		}
		if !s.products.Exists(item.ProductID) {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].product_id %q does not reference a known product", i, item.ProductID),
			}
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := &domain.Order{
		Customer:  req.Customer,
		Items:     items,
		Status:    domain.OrderStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	s.orders.Create(order)
	return order, nil
}

// CompleteOrder runs the reconciler against the order's items and flips
// the order to completed, as one unit. On any failure the order stays
// open and counters are unchanged.
func (s *SalesService) CompleteOrder(orderID string) (*domain.Order, error) {
	return s.reconciler.Complete(orderID)
}

// GenerateInvoice builds the invoice document for a completed order and
// hands it to the renderer for export. Rendering is fire-and-forget:
// the document is returned regardless of the export outcome.
func (s *SalesService) GenerateInvoice(orderID string) (*domain.InvoiceDocument, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return nil, err
	}

	doc, err := ledger.Format(order, s.products)
	if err != nil {
		return nil, err
	}

	if s.renderer != nil {
		go s.renderInvoice(doc)
	}

	return doc, nil
}

// renderInvoice exports the document. Failures are logged, never
// surfaced to the caller.
func (s *SalesService) renderInvoice(doc *domain.InvoiceDocument) {
	if err := s.renderer.Render(doc); err != nil {
		slog.Warn("invoice render failed",
			slog.String("invoice_id", doc.InvoiceID),
			slog.String("order_id", doc.OrderID),
			slog.String("error", err.Error()),
		)
	}
}

// GetOrder retrieves an order by id.
func (s *SalesService) GetOrder(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

// ListOrders returns orders matching the optional status filter and a
// case-insensitive substring query against order id or customer.
// Read-only, no side effects.
func (s *SalesService) ListOrders(status *domain.OrderStatus, query string) ([]*domain.Order, error) {
	if status != nil && !ValidOrderStatuses[*status] {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("Invalid status filter: '%s'. Must be one of: open, completed", *status),
		}
	}
	return s.orders.List(status, query), nil
}
