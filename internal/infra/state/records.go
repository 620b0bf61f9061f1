package state

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the persisted blob: every mutable store in one document.
// Canteens are static and not part of it.
type Snapshot struct {
	FoodItems []FoodItemRecord `json:"foodItems"`
	Orders    []OrderRecord    `json:"orders"`
	Wallets   []WalletRecord   `json:"wallets"`
	TimeSlots []TimeSlotRecord `json:"timeSlots"`
}

type FoodItemRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	IsVeg       bool   `json:"isVeg"`
	Quantity    int    `json:"quantity"`
	CanteenID   string `json:"canteenId"`
	AvgPrepTime int    `json:"avgPrepTime"`
	DailyDemand int    `json:"dailyDemand"`
}

type LineItemRecord struct {
	FoodItemID string `json:"foodItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	IsVeg      bool   `json:"isVeg"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
}

type OrderRecord struct {
	ID              uuid.UUID        `json:"id"`
	StudentID       string           `json:"studentId"`
	StudentName     string           `json:"studentName"`
	Items           []LineItemRecord `json:"items"`
	TotalAmount     int64            `json:"totalAmount"`
	Status          string           `json:"status"`
	CanteenID       string           `json:"canteenId"`
	CreatedAt       time.Time        `json:"createdAt"`
	AcceptedAt      *time.Time       `json:"acceptedAt,omitempty"`
	PreparingAt     *time.Time       `json:"preparingAt,omitempty"`
	ReadyAt         *time.Time       `json:"readyAt,omitempty"`
	SlotTime        string           `json:"slotTime"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
}

type TransactionRecord struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type WalletRecord struct {
	StudentID    string              `json:"studentId"`
	Balance      int64               `json:"balance"`
	Transactions []TransactionRecord `json:"transactions"`
}

type TimeSlotRecord struct {
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Filled    int    `json:"filled"`
	CanteenID string `json:"canteenId"`
}

// Clone deep-copies the snapshot so a unit of work can be discarded on failure.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		FoodItems: append([]FoodItemRecord(nil), s.FoodItems...),
		TimeSlots: append([]TimeSlotRecord(nil), s.TimeSlots...),
		Orders:    make([]OrderRecord, len(s.Orders)),
		Wallets:   make([]WalletRecord, len(s.Wallets)),
	}
	for i, o := range s.Orders {
		o.Items = append([]LineItemRecord(nil), o.Items...)
		out.Orders[i] = o
	}
	for i, w := range s.Wallets {
		w.Transactions = append([]TransactionRecord(nil), w.Transactions...)
		out.Wallets[i] = w
	}
	return out
}

func (s *Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
