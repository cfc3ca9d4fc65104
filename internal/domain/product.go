package domain

// Product represents a sellable item with running sales counters.
// UnitPrice is immutable after creation; QuantitySold and TotalAmount
// are only ever incremented by the reconciler when an order completes.
type Product struct {
	ID           string
	Name         string
	UnitPrice    int64 // cents
	QuantitySold int64
	TotalAmount  int64 // cents, always equals Σ(UnitPrice × qty) over completed orders
}
