package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/service"
)

// StockHandler handles HTTP requests for inventory endpoints.
type StockHandler struct {
	inventorySvc *service.InventoryService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(inventorySvc *service.InventoryService) *StockHandler {
	return &StockHandler{inventorySvc: inventorySvc}
}

// stockItemRequest is one item in a batch add request.
type stockItemRequest struct {
	Name      string  `json:"name"`
	Stock     int64   `json:"stock"`
	Threshold int64   `json:"threshold"`
	Cost      float64 `json:"cost"`
}

// addStockRequest is the JSON request body for POST /stock.
type addStockRequest struct {
	Items []stockItemRequest `json:"items"`
}

// updateStockRequest is the JSON request body for PATCH /stock/{item_id}.
// Absent fields are left untouched.
type updateStockRequest struct {
	Name      *string  `json:"name"`
	Stock     *int64   `json:"stock"`
	Threshold *int64   `json:"threshold"`
	Cost      *float64 `json:"cost"`
}

// stockItemResponse is the JSON representation of an inventory item.
type stockItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Stock     int64   `json:"stock"`
	Threshold int64   `json:"threshold"`
	Cost      float64 `json:"cost"`
	LowStock  bool    `json:"low_stock"`
}

// stockListResponse is the JSON response for stock listings.
type stockListResponse struct {
	Items []stockItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// AddItems handles POST /stock.
func (h *StockHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	inputs := make([]service.StockItemInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = service.StockItemInput{
			Name:      item.Name,
			Stock:     item.Stock,
			Threshold: item.Threshold,
			Cost:      item.Cost,
		}
	}

	items, err := h.inventorySvc.AddItems(inputs)
	if err != nil {
		mapStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildStockListResponse(items))
}

// List handles GET /stock with an optional q parameter.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.inventorySvc.ListItems(r.URL.Query().Get("q"))
	WriteJSON(w, http.StatusOK, buildStockListResponse(items))
}

// ListLow handles GET /stock/low.
func (h *StockHandler) ListLow(w http.ResponseWriter, r *http.Request) {
	items := h.inventorySvc.LowStock()
	WriteJSON(w, http.StatusOK, buildStockListResponse(items))
}

// Update handles PATCH /stock/{item_id}.
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req updateStockRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	item, err := h.inventorySvc.UpdateItem(id, service.UpdateStockItemRequest{
		Name:      req.Name,
		Stock:     req.Stock,
		Threshold: req.Threshold,
		Cost:      req.Cost,
	})
	if err != nil {
		mapStockError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildStockItemResponse(item))
}

// Delete handles DELETE /stock/{item_id}.
func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.inventorySvc.DeleteItem(id); err != nil {
		mapStockError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseItemID extracts and parses the item_id URL parameter. On failure
// it writes the error response and returns ok=false.
func parseItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "item_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		WriteError(w, http.StatusBadRequest, "validation_error", "item_id must be a positive integer")
		return 0, false
	}
	return id, true
}

func buildStockItemResponse(item *domain.StockItem) stockItemResponse {
	return stockItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Stock:     item.Stock,
		Threshold: item.Threshold,
		Cost:      domain.CentsToDollars(item.Cost),
		LowStock:  item.LowStock(),
	}
}

func buildStockListResponse(items []*domain.StockItem) stockListResponse {
	resp := stockListResponse{
		Items: make([]stockItemResponse, len(items)),
		Total: len(items),
	}
	for i, item := range items {
		resp.Items[i] = buildStockItemResponse(item)
	}
	return resp
}

// mapStockError maps domain errors to HTTP responses for inventory endpoints.
func mapStockError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrStockItemNotFound):
		WriteError(w, http.StatusNotFound, "stock_item_not_found", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
