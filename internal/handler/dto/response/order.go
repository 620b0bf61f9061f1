package response

import (
	"time"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	FoodItemID string `json:"foodItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"price"`
	IsVeg      bool   `json:"isVeg"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	StudentID       string              `json:"studentId"`
	StudentName     string              `json:"studentName"`
	CanteenID       string              `json:"canteenId"`
	SlotTime        string              `json:"slotTime"`
	Items           []OrderLineResponse `json:"items"`
	TotalAmount     int64               `json:"totalAmount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	AcceptedAt      *time.Time          `json:"acceptedAt,omitempty"`
	PreparingAt     *time.Time          `json:"preparingAt,omitempty"`
	ReadyAt         *time.Time          `json:"readyAt,omitempty"`
	RejectionReason string              `json:"rejectionReason,omitempty"`
}

type StockImpactResponse struct {
	FoodItemID string `json:"foodItemId"`
	ItemName   string `json:"itemName"`
	Before     int    `json:"before"`
	After      int    `json:"after"`
	IsLow      bool   `json:"isLow"`
}

type SlotImpactResponse struct {
	Before     int  `json:"before"`
	After      int  `json:"after"`
	Capacity   int  `json:"capacity"`
	IsOverload bool `json:"isOverload"`
}

type OrderImpactResponse struct {
	Order       *OrderResponse        `json:"order"`
	StockImpact []StockImpactResponse `json:"stockImpact"`
	SlotImpact  SlotImpactResponse    `json:"slotImpact"`
	CanAccept   bool                  `json:"canAccept"`
}
