package service

import (
	"fmt"

	"github.com/nvilela/salesledger/internal/domain"
	"github.com/nvilela/salesledger/internal/store"
)

// StockItemInput represents one item in a batch add request.
type StockItemInput struct {
	Name      string
	Stock     int64
	Threshold int64
	Cost      float64 // dollars
}

// UpdateStockItemRequest carries the fields to change on a stock item.
// Nil fields are left untouched.
type UpdateStockItemRequest struct {
	Name      *string
	Stock     *int64
	Threshold *int64
	Cost      *float64 // dollars
}

// InventoryService handles the stock inventory: batch add, inline edit,
// delete, and search.
type InventoryService struct {
	stock *store.StockStore
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(stock *store.StockStore) *InventoryService {
	return &InventoryService{stock: stock}
}

// AddItems validates the whole batch, then inserts it. Validation is
// all-or-nothing: one bad row rejects the entire batch and nothing is
// inserted.
func (s *InventoryService) AddItems(inputs []StockItemInput) ([]*domain.StockItem, error) {
	if len(inputs) == 0 {
		return nil, &domain.ValidationError{
			Message: "items must be a non-empty array",
		}
	}

	items := make([]*domain.StockItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].name is required", i),
			}
		}
		if in.Stock < 0 {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].stock must be >= 0", i),
			}
		}
		if in.Threshold < 0 {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].threshold must be >= 0", i),
			}
		}
		if in.Cost < 0 {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].cost must be >= 0", i),
			}
		}
		costCents, err := domain.DollarsToCents(in.Cost)
		if err != nil {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].cost must have at most 2 decimal places", i),
			}
		}
		items = append(items, &domain.StockItem{
			Name:      in.Name,
			Stock:     in.Stock,
			Threshold: in.Threshold,
			Cost:      costCents,
		})
	}

	s.stock.Create(items)
	return items, nil
}

// UpdateItem applies the non-nil fields of the request to the item.
func (s *InventoryService) UpdateItem(id int64, req UpdateStockItemRequest) (*domain.StockItem, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, &domain.ValidationError{
			Message: "name must not be empty",
		}
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, &domain.ValidationError{
			Message: "stock must be >= 0",
		}
	}
	if req.Threshold != nil && *req.Threshold < 0 {
		return nil, &domain.ValidationError{
			Message: "threshold must be >= 0",
		}
	}
	var costCents int64
	if req.Cost != nil {
		if *req.Cost < 0 {
			return nil, &domain.ValidationError{
				Message: "cost must be >= 0",
			}
		}
		c, err := domain.DollarsToCents(*req.Cost)
		if err != nil {
			return nil, &domain.ValidationError{
				Message: "cost must have at most 2 decimal places",
			}
		}
		costCents = c
	}

	err := s.stock.Update(id, func(item *domain.StockItem) {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Stock != nil {
			item.Stock = *req.Stock
		}
		if req.Threshold != nil {
			item.Threshold = *req.Threshold
		}
		if req.Cost != nil {
			item.Cost = costCents
		}
	})
	if err != nil {
		return nil, err
	}
	return s.stock.Get(id)
}

// DeleteItem removes a stock item.
func (s *InventoryService) DeleteItem(id int64) error {
	return s.stock.Delete(id)
}

// ListItems returns stock items, optionally filtered by a
// case-insensitive name search.
func (s *InventoryService) ListItems(query string) []*domain.StockItem {
	return s.stock.List(query)
}

// LowStock returns items at or below their reorder threshold.
func (s *InventoryService) LowStock() []*domain.StockItem {
	return s.stock.ListLowStock()
}
