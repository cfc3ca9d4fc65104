package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/service"
)

// SalesHandler handles HTTP requests for sales order endpoints.
type SalesHandler struct {
	salesSvc *service.SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(salesSvc *service.SalesService) *SalesHandler {
	return &SalesHandler{salesSvc: salesSvc}
}

// saleItemRequest is one line item in a record-sale request.
type saleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// recordSaleRequest is the JSON request body for POST /sales.
type recordSaleRequest struct {
	Customer string            `json:"customer"`
	Items    []saleItemRequest `json:"items"`
}

// orderItemResponse is one line item in an order response.
type orderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// orderResponse is the JSON representation of a sales order.
type orderResponse struct {
	OrderID     string              `json:"order_id"`
	Customer    string              `json:"customer"`
	Items       []orderItemResponse `json:"items"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"created_at"`
	CompletedAt *string             `json:"completed_at"`
}

// orderListResponse is the JSON response for GET /orders.
type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// invoiceLineResponse is a single charge line in an invoice response.
type invoiceLineResponse struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// invoiceResponse is the JSON response for POST /orders/{order_id}/invoice.
type invoiceResponse struct {
	InvoiceID string                `json:"invoice_id"`
	OrderID   string                `json:"order_id"`
	Customer  string                `json:"customer"`
	Status    string                `json:"status"`
	Lines     []invoiceLineResponse `json:"lines"`
	Total     float64               `json:"total"`
	IssuedAt  string                `json:"issued_at"`
}

// RecordSale handles POST /sales.
func (h *SalesHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.salesSvc.RecordSale(service.RecordSaleRequest{
		Customer: req.Customer,
		Items:    items,
	})
	if err != nil {
		mapSalesError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildOrderResponse(order))
}

// GetOrder handles GET /orders/{order_id}.
func (h *SalesHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.salesSvc.GetOrder(orderID)
	if err != nil {
		mapSalesError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

// ListOrders handles GET /orders with optional status and q parameters.
func (h *SalesHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var status *domain.OrderStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.OrderStatus(s)
		status = &st
	}
	query := r.URL.Query().Get("q")

	orders, err := h.salesSvc.ListOrders(status, query)
	if err != nil {
		mapSalesError(w, err)
		return
	}

	resp := orderListResponse{
		Orders: make([]orderResponse, len(orders)),
		Total:  len(orders),
	}
	for i, o := range orders {
		resp.Orders[i] = buildOrderResponse(o)
	}

	WriteJSON(w, http.StatusOK, resp)
}

// CompleteOrder handles POST /orders/{order_id}/complete.
func (h *SalesHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.salesSvc.CompleteOrder(orderID)
	if err != nil {
		mapSalesError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

// GenerateInvoice handles POST /orders/{order_id}/invoice.
func (h *SalesHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	doc, err := h.salesSvc.GenerateInvoice(orderID)
	if err != nil {
		mapSalesError(w, err)
		return
	}

	resp := invoiceResponse{
		InvoiceID: doc.InvoiceID,
		OrderID:   doc.OrderID,
		Customer:  doc.Customer,
		Status:    string(doc.Status),
		Lines:     make([]invoiceLineResponse, len(doc.Lines)),
		Total:     domain.CentsToDollars(doc.Total),
		IssuedAt:  doc.IssuedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	for i, line := range doc.Lines {
		resp.Lines[i] = invoiceLineResponse{
			ProductID:   line.ProductID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   domain.CentsToDollars(line.UnitPrice),
			LineTotal:   domain.CentsToDollars(line.LineTotal),
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}

// buildOrderResponse converts a domain order to its JSON form.
func buildOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	resp := orderResponse{
		OrderID:   o.OrderID,
		Customer:  o.Customer,
		Items:     items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if o.CompletedAt != nil {
		s := o.CompletedAt.UTC().Format("2006-01-02T15:04:05Z")
		resp.CompletedAt = &s
	}
	return resp
}

// mapSalesError maps domain errors to HTTP responses for sales endpoints.
func mapSalesError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, domain.ErrOrderAlreadyCompleted):
		WriteError(w, http.StatusConflict, "order_already_completed", err.Error())
	case errors.Is(err, domain.ErrOrderNotCompleted):
		WriteError(w, http.StatusConflict, "order_not_completed", err.Error())
	case errors.Is(err, domain.ErrProductUnresolved):
		WriteError(w, http.StatusUnprocessableEntity, "product_unresolved", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
