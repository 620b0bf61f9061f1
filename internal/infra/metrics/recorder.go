package metrics

import (
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
)

// Recorder publishes engine events as Prometheus series.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OrderPlaced(o *order.Order) {
	OrdersPlaced.WithLabelValues(o.CanteenID()).Inc()
}

func (r *Recorder) OrderTransitioned(o *order.Order) {
	OrderTransitions.WithLabelValues(o.CanteenID(), o.Status().String()).Inc()
}

func (r *Recorder) OrderRefused(canteenID, reason string) {
	OrdersRefused.WithLabelValues(canteenID, reason).Inc()
}

func (r *Recorder) StockChanged(item *catalog.FoodItem) {
	StockLevel.WithLabelValues(item.CanteenID(), item.Name()).Set(float64(item.Quantity()))
}

func (r *Recorder) SlotChanged(s *slot.TimeSlot) {
	SlotFillRatio.WithLabelValues(s.CanteenID(), s.Label()).Set(s.FillRatio())
}

func (r *Recorder) WalletCredited(kind string, amount int64) {
	WalletAmount.WithLabelValues(kind).Add(float64(amount))
}
