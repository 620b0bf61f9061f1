package request

import (
	"campus-canteen/internal/domain/order"
)

type OrderItemRequest struct {
	FoodItemID string `json:"foodItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CanteenID   string             `json:"canteenId" binding:"required"`
	StudentName string             `json:"studentName" binding:"required,max=100"`
	SlotTime    string             `json:"slotTime" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Accepted Preparing Ready Rejected"`
	Reason string `json:"reason" binding:"max=200"`
}

func (r *UpdateOrderStatusRequest) ToDomain() (order.Status, error) {
	s := order.Status(r.Status)
	if !s.IsValid() {
		return "", order.ErrInvalidStatus
	}
	return s, nil
}
