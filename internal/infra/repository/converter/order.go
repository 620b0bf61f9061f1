package converter

import (
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/infra/state"
)

func OrderToRecord(o *order.Order) state.OrderRecord {
	items := o.Items()
	lines := make([]state.LineItemRecord, len(items))
	for i, it := range items {
		lines[i] = state.LineItemRecord{
			FoodItemID: it.FoodItemID,
			Name:       it.Name,
			Price:      it.UnitPrice,
			IsVeg:      it.IsVeg,
			Image:      it.Image,
			Quantity:   it.Quantity,
		}
	}

	return state.OrderRecord{
		ID:              o.ID(),
		StudentID:       o.StudentID(),
		StudentName:     o.StudentName(),
		Items:           lines,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		CanteenID:       o.CanteenID(),
		CreatedAt:       o.CreatedAt(),
		AcceptedAt:      o.AcceptedAt(),
		PreparingAt:     o.PreparingAt(),
		ReadyAt:         o.ReadyAt(),
		SlotTime:        o.SlotLabel(),
		RejectionReason: o.RejectionReason(),
	}
}

func OrderFromRecord(r state.OrderRecord) *order.Order {
	items := make([]order.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.LineItem{
			FoodItemID: it.FoodItemID,
			Name:       it.Name,
			UnitPrice:  it.Price,
			IsVeg:      it.IsVeg,
			Image:      it.Image,
			Quantity:   it.Quantity,
		}
	}

	return order.ReconstructOrder(order.ReconstructParams{
		ID:              r.ID,
		StudentID:       r.StudentID,
		StudentName:     r.StudentName,
		CanteenID:       r.CanteenID,
		SlotLabel:       r.SlotTime,
		Items:           items,
		TotalAmount:     r.TotalAmount,
		Status:          order.Status(r.Status),
		CreatedAt:       r.CreatedAt,
		AcceptedAt:      r.AcceptedAt,
		PreparingAt:     r.PreparingAt,
		ReadyAt:         r.ReadyAt,
		RejectionReason: r.RejectionReason,
	})
}
