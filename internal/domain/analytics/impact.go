package analytics

import (
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
)

const (
	// LowStockThreshold marks an impact line as low once remaining stock drops below it.
	LowStockThreshold = 10
	// SlotOverloadRatio is the post-booking fill ratio above which a slot is overloaded.
	SlotOverloadRatio = 0.9
)

// StockLookup resolves the current catalog state of a food item.
type StockLookup func(foodItemID string) (*catalog.FoodItem, bool)

type StockImpactLine struct {
	FoodItemID string
	ItemName   string
	Before     int
	After      int
	IsLow      bool
}

// StockImpact previews per-line stock if the order were accepted now.
// Unknown items count as zero stock.
func StockImpact(o *order.Order, lookup StockLookup) []StockImpactLine {
	items := o.Items()
	lines := make([]StockImpactLine, 0, len(items))
	for _, li := range items {
		before := 0
		if item, ok := lookup(li.FoodItemID); ok {
			before = item.Quantity()
		}
		after := before - li.Quantity
		lines = append(lines, StockImpactLine{
			FoodItemID: li.FoodItemID,
			ItemName:   li.Name,
			Before:     before,
			After:      after,
			IsLow:      after < LowStockThreshold,
		})
	}
	return lines
}

// CanAccept reports whether current stock covers the order's combined quantity of every item.
func CanAccept(o *order.Order, lookup StockLookup) bool {
	ids, need := o.ItemQuantities()
	for _, id := range ids {
		item, ok := lookup(id)
		if !ok || !item.HasStock(need[id]) {
			return false
		}
	}
	return true
}

type SlotImpactView struct {
	Before     int
	After      int
	Capacity   int
	IsOverload bool
}

// SlotImpact previews exactly one more booking. A nil slot yields the zero view.
func SlotImpact(s *slot.TimeSlot) SlotImpactView {
	if s == nil {
		return SlotImpactView{}
	}
	after := s.Filled() + 1
	overload := true
	if s.Capacity() > 0 {
		overload = float64(after)/float64(s.Capacity()) > SlotOverloadRatio
	}
	return SlotImpactView{
		Before:     s.Filled(),
		After:      after,
		Capacity:   s.Capacity(),
		IsOverload: overload,
	}
}
