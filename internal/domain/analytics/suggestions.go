package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

type Kind string

const (
	KindDelay     Kind = "delay"
	KindInventory Kind = "inventory"
	KindCapacity  Kind = "capacity"
	KindDemand    Kind = "demand"
	KindTrending  Kind = "trending"
	KindInsight   Kind = "insight"
)

type Suggestion struct {
	Kind        Kind
	Priority    Priority
	Title       string
	Description string
	Consequence string
	Action      string
}

// Snapshot is one canteen's view of the stores at a point in time.
type Snapshot struct {
	Items  []*catalog.FoodItem
	Orders []*order.Order
	Slots  []*slot.TimeSlot
	Now    time.Time
}

const (
	selloutAlertStock  = 15
	fastMoverDemand    = 40
	fastMoverStockRate = 0.5
	topItemsLimit      = 3
	vegSkewRatio       = 1.5
	lowLoadRatio       = 0.5
	minSuggestions     = 3
)

type rule func(Snapshot) []Suggestion

var rules = []rule{
	delayedOrdersRule,
	selloutRule,
	slotCongestionRule,
	fastMoverRule,
	trendingRule,
	vegSkewRule,
	lowLoadRule,
}

// Suggestions evaluates the rule table over the snapshot and stable-sorts by priority.
func Suggestions(s Snapshot) []Suggestion {
	out := make([]Suggestion, 0)
	for _, r := range rules {
		out = append(out, r(s)...)
	}
	if len(out) < minSuggestions {
		out = append(out, preparationReminder())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func delayedOrdersRule(s Snapshot) []Suggestion {
	delayed := DelayedOrders(s.Orders, s.Now)
	if len(delayed) == 0 {
		return nil
	}
	ids := make([]string, len(delayed))
	for i, o := range delayed {
		ids[i] = o.ID().String()
	}
	return []Suggestion{{
		Kind:        KindDelay,
		Priority:    PriorityCritical,
		Title:       fmt.Sprintf("%d students waiting too long", len(delayed)),
		Description: fmt.Sprintf("Orders %s have exceeded expected wait time.", strings.Join(ids, ", ")),
		Consequence: "Students may miss their classes or leave negative feedback.",
		Action:      "Prioritize these orders immediately and consider pausing new order acceptance.",
	}}
}

func selloutRule(s Snapshot) []Suggestion {
	var out []Suggestion
	for _, item := range s.Items {
		eta, ok := PredictSellout(item.Quantity(), item.DailyDemand())
		if !ok || item.Quantity() >= selloutAlertStock {
			continue
		}
		pending := 0
		for _, o := range s.Orders {
			if o.Status() == order.StatusNew && o.Contains(item.ID()) {
				pending++
			}
		}
		out = append(out, Suggestion{
			Kind:        KindInventory,
			Priority:    PriorityCritical,
			Title:       fmt.Sprintf("%s will sell out in %s", item.Name(), eta),
			Description: fmt.Sprintf("Only %d units left. %d pending orders contain this item.", item.Quantity(), pending),
			Consequence: fmt.Sprintf("If not restocked, approximately %d more students will face unavailability.",
				int(math.Ceil(float64(item.DailyDemand())*0.3))),
			Action: fmt.Sprintf("Prepare %d extra portions OR limit new orders for this item.",
				max(20, item.DailyDemand()-item.Quantity())),
		})
	}
	return out
}

func slotCongestionRule(s Snapshot) []Suggestion {
	var out []Suggestion
	for _, ts := range s.Slots {
		if !ts.IsAlmostFull() {
			continue
		}
		pending := 0
		for _, o := range s.Orders {
			if o.SlotLabel() == ts.Label() && !o.Status().IsTerminal() {
				pending++
			}
		}
		out = append(out, Suggestion{
			Kind:        KindCapacity,
			Priority:    PriorityHigh,
			Title:       fmt.Sprintf("Slot %s at %d%% capacity", ts.Label(), percent(ts.FillRatio())),
			Description: fmt.Sprintf("%d orders pending for this slot. Only %d spots remaining.", pending, ts.Remaining()),
			Consequence: "Accepting more orders will cause delays and student frustration.",
			Action:      "Shift preparation focus to this slot OR temporarily disable new bookings for this time.",
		})
	}
	return out
}

func fastMoverRule(s Snapshot) []Suggestion {
	var out []Suggestion
	for _, item := range s.Items {
		demand := item.DailyDemand()
		if demand <= fastMoverDemand || float64(item.Quantity()) >= float64(demand)*fastMoverStockRate {
			continue
		}
		gap := demand - item.Quantity()
		out = append(out, Suggestion{
			Kind:        KindDemand,
			Priority:    PriorityHigh,
			Title:       fmt.Sprintf("%s demand rising faster than stock", item.Name()),
			Description: fmt.Sprintf("Daily demand: %d units. Current stock: %d units.", demand, item.Quantity()),
			Consequence: fmt.Sprintf("Without action, %d students may not get their preferred item.", gap),
			Action:      fmt.Sprintf("Prepare %d additional portions immediately.", int(math.Ceil(float64(gap)*1.2))),
		})
	}
	return out
}

type ItemCount struct {
	Name  string
	Count int
}

// TopItems ranks items by cumulative ordered quantity, ties kept in first-seen order.
func TopItems(orders []*order.Order, limit int) []ItemCount {
	index := make(map[string]int)
	var counts []ItemCount
	for _, o := range orders {
		for _, li := range o.Items() {
			i, ok := index[li.Name]
			if !ok {
				i = len(counts)
				index[li.Name] = i
				counts = append(counts, ItemCount{Name: li.Name})
			}
			counts[i].Count += li.Quantity
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func trendingRule(s Snapshot) []Suggestion {
	top := TopItems(s.Orders, topItemsLimit)
	if len(top) == 0 {
		return nil
	}
	parts := make([]string, len(top))
	for i, c := range top {
		parts[i] = fmt.Sprintf("%s (%d sold)", c.Name, c.Count)
	}
	return []Suggestion{{
		Kind:        KindTrending,
		Priority:    PriorityMedium,
		Title:       "Today's Trending Items",
		Description: fmt.Sprintf("%s are performing well.", strings.Join(parts, ", ")),
		Consequence: "Maintaining stock for these items ensures maximum revenue.",
		Action:      "Keep extra portions ready for these items during peak hours.",
	}}
}

func vegSkewRule(s Snapshot) []Suggestion {
	veg, nonVeg := 0, 0
	for _, o := range s.Orders {
		for _, li := range o.Items() {
			if li.IsVeg {
				veg += li.Quantity
			} else {
				nonVeg += li.Quantity
			}
		}
	}
	if float64(veg) <= float64(nonVeg)*vegSkewRatio {
		return nil
	}
	return []Suggestion{{
		Kind:        KindInsight,
		Priority:    PriorityLow,
		Title:       "Shift focus to vegetarian items",
		Description: fmt.Sprintf("Veg items are selling %d%% more than non-veg today.", percent(float64(veg)/float64(max(nonVeg, 1)))),
		Consequence: "Over-preparing non-veg may lead to wastage.",
		Action:      "Reduce non-veg preparation by 20% and increase veg items accordingly.",
	}}
}

func lowLoadRule(s Snapshot) []Suggestion {
	filled, capacity := 0, 0
	for _, ts := range s.Slots {
		filled += ts.Filled()
		capacity += ts.Capacity()
	}
	if capacity == 0 {
		return nil
	}
	load := float64(filled) / float64(capacity)
	if load >= lowLoadRatio {
		return nil
	}
	return []Suggestion{{
		Kind:        KindInsight,
		Priority:    PriorityLow,
		Title:       "Your canteen has lower load than others",
		Description: fmt.Sprintf("Current utilization: %d%%. You can handle more orders.", percent(load)),
		Consequence: "Opportunity to serve more students and increase revenue.",
		Action:      "Consider promoting your canteen's specialty items to attract more students.",
	}}
}

func preparationReminder() Suggestion {
	return Suggestion{
		Kind:        KindInsight,
		Priority:    PriorityLow,
		Title:       "Preparation Reminder",
		Description: "Peak lunch hours (12-1 PM) typically see 40% more orders.",
		Consequence: "Being unprepared causes delays and lost orders.",
		Action:      "Pre-prepare popular items 30 minutes before peak time.",
	}
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
