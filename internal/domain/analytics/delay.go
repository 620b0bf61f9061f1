package analytics

import (
	"time"

	"campus-canteen/internal/domain/order"
)

var delayThresholds = map[order.Status]time.Duration{
	order.StatusNew:       3 * time.Minute,
	order.StatusAccepted:  5 * time.Minute,
	order.StatusPreparing: 10 * time.Minute,
}

// DelayThreshold returns how long an order may sit in status before it counts as delayed.
func DelayThreshold(status order.Status) (time.Duration, bool) {
	d, ok := delayThresholds[status]
	return d, ok
}

// IsDelayed is a pure function of status and age. Terminal orders are never delayed.
func IsDelayed(status order.Status, age time.Duration) bool {
	threshold, ok := delayThresholds[status]
	if !ok {
		return false
	}
	return age > threshold
}

func DelayedOrders(orders []*order.Order, now time.Time) []*order.Order {
	delayed := make([]*order.Order, 0)
	for _, o := range orders {
		if IsDelayed(o.Status(), now.Sub(o.CreatedAt())) {
			delayed = append(delayed, o)
		}
	}
	return delayed
}

func WaitingStudents(orders []*order.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status().IsWaiting() {
			n++
		}
	}
	return n
}
