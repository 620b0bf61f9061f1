package queries

import (
	"time"

	"campus-canteen/internal/domain/analytics"
	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/domain/wallet"

	"github.com/google/uuid"
)

type CanteenView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	CrowdLevel string `json:"crowd_level"`
}

type FoodItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	IsVeg       bool    `json:"is_veg"`
	Quantity    int     `json:"quantity"`
	CanteenID   string  `json:"canteen_id"`
	AvgPrepTime int     `json:"avg_prep_time"`
	DailyDemand int     `json:"daily_demand"`
	InStock     bool    `json:"in_stock"`
	SelloutIn   *string `json:"sellout_in,omitempty"`
}

type SlotView struct {
	CanteenID    string `json:"canteen_id"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity"`
	Filled       int    `json:"filled"`
	Remaining    int    `json:"remaining"`
	IsFull       bool   `json:"is_full"`
	IsAlmostFull bool   `json:"is_almost_full"`
}

type OrderLineView struct {
	FoodItemID string `json:"food_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	IsVeg      bool   `json:"is_veg"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	StudentID       string          `json:"student_id"`
	StudentName     string          `json:"student_name"`
	CanteenID       string          `json:"canteen_id"`
	SlotTime        string          `json:"slot_time"`
	Items           []OrderLineView `json:"items"`
	TotalAmount     int64           `json:"total_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	AcceptedAt      *time.Time      `json:"accepted_at,omitempty"`
	PreparingAt     *time.Time      `json:"preparing_at,omitempty"`
	ReadyAt         *time.Time      `json:"ready_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
}

type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type WalletView struct {
	StudentID    string            `json:"student_id"`
	Balance      int64             `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
}

type StockImpactView struct {
	FoodItemID string `json:"food_item_id"`
	ItemName   string `json:"item_name"`
	Before     int    `json:"before"`
	After      int    `json:"after"`
	IsLow      bool   `json:"is_low"`
}

type SlotImpactView struct {
	Before     int  `json:"before"`
	After      int  `json:"after"`
	Capacity   int  `json:"capacity"`
	IsOverload bool `json:"is_overload"`
}

type OrderImpactView struct {
	Order       *OrderView        `json:"order"`
	StockImpact []StockImpactView `json:"stock_impact"`
	SlotImpact  SlotImpactView    `json:"slot_impact"`
	CanAccept   bool              `json:"can_accept"`
}

type SelloutView struct {
	FoodItemID  string  `json:"food_item_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	DailyDemand int     `json:"daily_demand"`
	SelloutIn   *string `json:"sellout_in,omitempty"`
}

type SuggestionView struct {
	Kind        string `json:"kind"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Consequence string `json:"consequence"`
	Action      string `json:"action"`
}

type DashboardView struct {
	Canteen          *CanteenView   `json:"canteen"`
	StatusCounts     map[string]int `json:"status_counts"`
	WaitingStudents  int            `json:"waiting_students"`
	DelayedOrders    []*OrderView   `json:"delayed_orders"`
	LowStockItems    []FoodItemView `json:"low_stock_items"`
	SlotsFillingFast []SlotView     `json:"slots_filling_fast"`
	Revenue          int64          `json:"revenue"`
}

func NewCanteenView(c *canteen.Canteen) *CanteenView {
	return &CanteenView{
		ID:         c.ID(),
		Name:       c.Name(),
		Category:   string(c.Category()),
		CrowdLevel: string(c.CrowdLevel()),
	}
}

func NewFoodItemView(f *catalog.FoodItem) FoodItemView {
	v := FoodItemView{
		ID:          f.ID(),
		Name:        f.Name(),
		Price:       f.Price(),
		Image:       f.Image(),
		IsVeg:       f.IsVeg(),
		Quantity:    f.Quantity(),
		CanteenID:   f.CanteenID(),
		AvgPrepTime: f.AvgPrepTime(),
		DailyDemand: f.DailyDemand(),
		InStock:     f.Quantity() > 0,
	}
	if eta, ok := analytics.PredictSellout(f.Quantity(), f.DailyDemand()); ok {
		v.SelloutIn = &eta
	}
	return v
}

func NewSlotView(s *slot.TimeSlot) SlotView {
	return SlotView{
		CanteenID:    s.CanteenID(),
		Label:        s.Label(),
		Capacity:     s.Capacity(),
		Filled:       s.Filled(),
		Remaining:    s.Remaining(),
		IsFull:       s.IsFull(),
		IsAlmostFull: s.IsAlmostFull(),
	}
}

func NewOrderView(o *order.Order) *OrderView {
	items := o.Items()
	lines := make([]OrderLineView, len(items))
	for i, li := range items {
		lines[i] = OrderLineView{
			FoodItemID: li.FoodItemID,
			Name:       li.Name,
			UnitPrice:  li.UnitPrice,
			IsVeg:      li.IsVeg,
			Image:      li.Image,
			Quantity:   li.Quantity,
			Subtotal:   li.Subtotal(),
		}
	}
	return &OrderView{
		ID:              o.ID(),
		StudentID:       o.StudentID(),
		StudentName:     o.StudentName(),
		CanteenID:       o.CanteenID(),
		SlotTime:        o.SlotLabel(),
		Items:           lines,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		AcceptedAt:      o.AcceptedAt(),
		PreparingAt:     o.PreparingAt(),
		ReadyAt:         o.ReadyAt(),
		RejectionReason: o.RejectionReason(),
	}
}

func NewOrderViews(orders []*order.Order) []*OrderView {
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views
}

func NewWalletView(w *wallet.Wallet) *WalletView {
	txs := w.TransactionsNewestFirst()
	views := make([]TransactionView, len(txs))
	for i, tx := range txs {
		views[i] = TransactionView{
			ID:          tx.ID(),
			Kind:        tx.Kind().String(),
			Amount:      tx.Amount(),
			Description: tx.Description(),
			CreatedAt:   tx.CreatedAt(),
		}
	}
	return &WalletView{
		StudentID:    w.StudentID(),
		Balance:      w.Balance(),
		Transactions: views,
	}
}

func NewSuggestionViews(suggestions []analytics.Suggestion) []SuggestionView {
	views := make([]SuggestionView, len(suggestions))
	for i, s := range suggestions {
		views[i] = SuggestionView{
			Kind:        string(s.Kind),
			Priority:    string(s.Priority),
			Title:       s.Title,
			Description: s.Description,
			Consequence: s.Consequence,
			Action:      s.Action,
		}
	}
	return views
}
