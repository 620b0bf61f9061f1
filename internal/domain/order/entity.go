package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrInvalidStudent    = errors.New("student id is required")
	ErrMissingSlot       = errors.New("pickup slot is required")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSlotFull          = errors.New("time slot is full")
)

const (
	DefaultRejectionReason = "Insufficient stock"
	defaultRefundReason    = "Order rejected"
)

// LineItem snapshots the food item at order time. It is never re-validated against the catalog.
type LineItem struct {
	FoodItemID string
	Name       string
	UnitPrice  int64
	IsVeg      bool
	Image      string
	Quantity   int
}

func (l LineItem) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

type NewOrderParams struct {
	StudentID   string
	StudentName string
	CanteenID   string
	SlotLabel   string
	Items       []LineItem
}

type Order struct {
	id              uuid.UUID
	studentID       string
	studentName     string
	canteenID       string
	slotLabel       string
	items           []LineItem
	totalAmount     int64
	status          Status
	createdAt       time.Time
	acceptedAt      *time.Time
	preparingAt     *time.Time
	readyAt         *time.Time
	rejectionReason string
}

func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if strings.TrimSpace(p.StudentID) == "" {
		return nil, ErrInvalidStudent
	}
	if strings.TrimSpace(p.SlotLabel) == "" {
		return nil, ErrMissingSlot
	}
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]LineItem, len(p.Items))
	var total int64
	for i, li := range p.Items {
		if li.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		items[i] = li
		total += li.Subtotal()
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		studentID:   strings.TrimSpace(p.StudentID),
		studentName: p.StudentName,
		canteenID:   p.CanteenID,
		slotLabel:   p.SlotLabel,
		items:       items,
		totalAmount: total,
		status:      StatusNew,
		createdAt:   now,
	}, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	StudentID       string
	StudentName     string
	CanteenID       string
	SlotLabel       string
	Items           []LineItem
	TotalAmount     int64
	Status          Status
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	PreparingAt     *time.Time
	ReadyAt         *time.Time
	RejectionReason string
}

func ReconstructOrder(p ReconstructParams) *Order {
	items := make([]LineItem, len(p.Items))
	copy(items, p.Items)
	return &Order{
		id:              p.ID,
		studentID:       p.StudentID,
		studentName:     p.StudentName,
		canteenID:       p.CanteenID,
		slotLabel:       p.SlotLabel,
		items:           items,
		totalAmount:     p.TotalAmount,
		status:          p.Status,
		createdAt:       p.CreatedAt,
		acceptedAt:      p.AcceptedAt,
		preparingAt:     p.PreparingAt,
		readyAt:         p.ReadyAt,
		rejectionReason: p.RejectionReason,
	}
}

// Transition moves the order to next and stamps the matching timestamp.
// Resource side effects (stock, wallet, slot) are the caller's concern.
func (o *Order) Transition(next Status, reason string, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !CanTransition(o.status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}

	t := now
	switch next {
	case StatusAccepted:
		o.acceptedAt = &t
	case StatusPreparing:
		o.preparingAt = &t
	case StatusReady:
		o.readyAt = &t
	case StatusRejected:
		o.rejectionReason = reason
		if strings.TrimSpace(reason) == "" {
			o.rejectionReason = DefaultRejectionReason
		}
	}
	o.status = next
	return nil
}

func (o *Order) BelongsTo(canteenID string) bool {
	return o.canteenID == canteenID
}

func (o *Order) Contains(foodItemID string) bool {
	for _, li := range o.items {
		if li.FoodItemID == foodItemID {
			return true
		}
	}
	return false
}

// DebitDescription labels the wallet debit for this order.
// ItemQuantities sums line quantities per food item. ids keeps first-seen order.
func (o *Order) ItemQuantities() (ids []string, need map[string]int) {
	need = make(map[string]int, len(o.items))
	for _, li := range o.items {
		if _, seen := need[li.FoodItemID]; !seen {
			ids = append(ids, li.FoodItemID)
		}
		need[li.FoodItemID] += li.Quantity
	}
	return ids, need
}

func (o *Order) DebitDescription() string {
	return "Order " + o.id.String()
}

// RefundDescription uses the reason as given, not the stored default.
func (o *Order) RefundDescription(reason string) string {
	if strings.TrimSpace(reason) == "" {
		reason = defaultRefundReason
	}
	return fmt.Sprintf("Refund for %s - %s", o.id, reason)
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) StudentID() string       { return o.studentID }
func (o *Order) StudentName() string     { return o.studentName }
func (o *Order) CanteenID() string       { return o.canteenID }
func (o *Order) SlotLabel() string       { return o.slotLabel }
func (o *Order) TotalAmount() int64      { return o.totalAmount }
func (o *Order) Status() Status          { return o.status }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) AcceptedAt() *time.Time  { return o.acceptedAt }
func (o *Order) PreparingAt() *time.Time { return o.preparingAt }
func (o *Order) ReadyAt() *time.Time     { return o.readyAt }
func (o *Order) RejectionReason() string { return o.rejectionReason }

func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}
