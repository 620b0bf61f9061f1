package shared

import (
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
)

// EventRecorder receives committed state changes, for metrics.
// Implementations must not block.
type EventRecorder interface {
	OrderPlaced(o *order.Order)
	OrderTransitioned(o *order.Order)
	OrderRefused(canteenID, reason string)
	StockChanged(item *catalog.FoodItem)
	SlotChanged(s *slot.TimeSlot)
	WalletCredited(kind string, amount int64)
}

type NopRecorder struct{}

func (NopRecorder) OrderPlaced(*order.Order)       {}
func (NopRecorder) OrderTransitioned(*order.Order) {}
func (NopRecorder) OrderRefused(string, string)    {}
func (NopRecorder) StockChanged(*catalog.FoodItem) {}
func (NopRecorder) SlotChanged(*slot.TimeSlot)     {}
func (NopRecorder) WalletCredited(string, int64)   {}
