package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrProductNotFound       = errors.New("product_not_found")
	ErrDuplicateProduct      = errors.New("duplicate_product_id")
	ErrOrderNotFound         = errors.New("order_not_found")
	ErrOrderAlreadyCompleted = errors.New("order_already_completed")
	ErrOrderNotCompleted     = errors.New("order_not_completed")
	ErrProductUnresolved     = errors.New("product_unresolved")
	ErrStockItemNotFound     = errors.New("stock_item_not_found")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
