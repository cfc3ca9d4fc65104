package service

import (
	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/store"
)

// AddProductRequest represents the input for adding a catalog product.
type AddProductRequest struct {
	ID        string
	Name      string
	UnitPrice float64 // dollars
}

// ProductService handles product catalog registration and queries.
type ProductService struct {
	products *store.ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(products *store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// AddProduct validates the request and inserts the product with zero
// sales counters. The unit price is immutable after creation.
func (s *ProductService) AddProduct(req AddProductRequest) (*domain.Product, error) {
	// Product ids are caller-assigned, so any non-empty string is allowed.
	if req.ID == "" {
		return nil, &domain.ValidationError{
			Message: "id is required",
		}
	}
	if req.Name == "" {
		return nil, &domain.ValidationError{
			Message: "name is required",
		}
	}
	if len(req.Name) > 128 {
		return nil, &domain.ValidationError{
			Message: "name must be at most 128 characters",
		}
	}
	if req.UnitPrice < 0 {
		return nil, &domain.ValidationError{
			Message: "unit_price must be >= 0",
		}
	}
	priceCents, err := domain.DollarsToCents(req.UnitPrice)
	if err != nil {
		return nil, &domain.ValidationError{
			Message: "unit_price must have at most 2 decimal places",
		}
	}

	p := &domain.Product{
		ID:        req.ID,
		Name:      req.Name,
		UnitPrice: priceCents,
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct retrieves a product by id.
func (s *ProductService) GetProduct(id string) (*domain.Product, error) {
	return s.products.Get(id)
}

// ListProducts returns all products in insertion order.
func (s *ProductService) ListProducts() []*domain.Product {
	return s.products.List()
}
