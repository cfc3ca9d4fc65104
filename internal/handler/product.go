package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/service"
)

// ProductHandler handles HTTP requests for product catalog endpoints.
type ProductHandler struct {
	productSvc *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productSvc *service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

// addProductRequest is the JSON request body for POST /products.
type addProductRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// productResponse is the JSON representation of a catalog product.
type productResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	QuantitySold int64   `json:"quantity_sold"`
	TotalAmount  float64 `json:"total_amount"`
}

// productListResponse is the JSON response for GET /products.
type productListResponse struct {
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
}

// Add handles POST /products.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	p, err := h.productSvc.AddProduct(service.AddProductRequest{
		ID:        req.ID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		mapProductError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildProductResponse(p))
}

// Get handles GET /products/{product_id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	p, err := h.productSvc.GetProduct(productID)
	if err != nil {
		mapProductError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildProductResponse(p))
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.productSvc.ListProducts()

	resp := productListResponse{
		Products: make([]productResponse, len(products)),
		Total:    len(products),
	}
	for i, p := range products {
		resp.Products[i] = buildProductResponse(p)
	}

	WriteJSON(w, http.StatusOK, resp)
}

// buildProductResponse converts a domain product to its JSON form.
func buildProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		Name:         p.Name,
		UnitPrice:    domain.CentsToDollars(p.UnitPrice),
		QuantitySold: p.QuantitySold,
		TotalAmount:  domain.CentsToDollars(p.TotalAmount),
	}
}

// mapProductError maps domain errors to HTTP responses for product endpoints.
func mapProductError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateProduct):
		WriteError(w, http.StatusConflict, "duplicate_product_id", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "product_not_found", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
