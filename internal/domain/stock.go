package domain

// StockItem represents an inventory item tracked separately from the
// sales product catalog. Threshold marks the reorder point.
type StockItem struct {
	ID        int64
	Name      string
	Stock     int64
	Threshold int64
	Cost      int64 // cents
}

// LowStock reports whether the item is at or below its reorder threshold.
func (s *StockItem) LowStock() bool {
	return s.Stock <= s.Threshold
}
