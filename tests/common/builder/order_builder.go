//go:build unit || e2e

package builder

import (
	"time"

	"campus-canteen/internal/domain/order"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/usecase/queries"
)

type OrderBuilder struct {
	StudentID   string
	StudentName string
	CanteenID   string
	SlotLabel   string
	Items       []order.LineItem
	CreatedAt   time.Time
	Status      order.Status
	Reason      string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		StudentID:   "student-1",
		StudentName: "Rahul Kumar",
		CanteenID:   "canteen-1",
		SlotLabel:   "12:00 PM - 12:30 PM",
		Items: []order.LineItem{
			{FoodItemID: "1", Name: "Chicken Biryani", UnitPrice: 120, Quantity: 2},
		},
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
		Status:    order.StatusNew,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithItem(id, name string, price int64, isVeg bool, qty int) *OrderBuilder {
	b.Items = append(b.Items, order.LineItem{FoodItemID: id, Name: name, UnitPrice: price, IsVeg: isVeg, Quantity: qty})
	return b
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

// BuildDomain creates a New order and walks it forward to Status.
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	o, err := order.NewOrder(order.NewOrderParams{
		StudentID:   b.StudentID,
		StudentName: b.StudentName,
		CanteenID:   b.CanteenID,
		SlotLabel:   b.SlotLabel,
		Items:       b.Items,
	}, b.CreatedAt)
	if err != nil {
		return nil, err
	}

	var path []order.Status
	switch b.Status {
	case order.StatusAccepted:
		path = []order.Status{order.StatusAccepted}
	case order.StatusPreparing:
		path = []order.Status{order.StatusAccepted, order.StatusPreparing}
	case order.StatusReady:
		path = []order.Status{order.StatusAccepted, order.StatusPreparing, order.StatusReady}
	case order.StatusRejected:
		path = []order.Status{order.StatusRejected}
	}
	for _, next := range path {
		if err := o.Transition(next, b.Reason, b.CreatedAt); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (b *OrderBuilder) MustBuildDomain() *order.Order {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return queries.NewOrderView(b.MustBuildDomain())
}

// BuildCreateRequestDTO mirrors the builder's lines as a student cart.
func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	items := make([]reqdto.OrderItemRequest, len(b.Items))
	for i, li := range b.Items {
		items[i] = reqdto.OrderItemRequest{FoodItemID: li.FoodItemID, Quantity: li.Quantity}
	}
	return reqdto.CreateOrderRequest{
		CanteenID:   b.CanteenID,
		StudentName: b.StudentName,
		SlotTime:    b.SlotLabel,
		Items:       items,
	}
}
