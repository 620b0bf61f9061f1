package catalog

import (
	"errors"
	"strings"
)

var (
	ErrInvalidFoodItem = errors.New("invalid food item")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

type FoodItem struct {
	id          string
	name        string
	price       int64
	image       string
	isVeg       bool
	quantity    int
	canteenID   string
	avgPrepTime int
	dailyDemand int
}

type FoodItemParams struct {
	ID          string
	Name        string
	Price       int64
	Image       string
	IsVeg       bool
	Quantity    int
	CanteenID   string
	AvgPrepTime int
	DailyDemand int
}

func NewFoodItem(p FoodItemParams) (*FoodItem, error) {
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.CanteenID) == "" {
		return nil, ErrInvalidFoodItem
	}
	if p.Price < 0 {
		return nil, ErrNegativePrice
	}
	item := ReconstructFoodItem(p)
	item.quantity = clamp(p.Quantity)
	return item, nil
}

func ReconstructFoodItem(p FoodItemParams) *FoodItem {
	return &FoodItem{
		id:          p.ID,
		name:        p.Name,
		price:       p.Price,
		image:       p.Image,
		isVeg:       p.IsVeg,
		quantity:    p.Quantity,
		canteenID:   p.CanteenID,
		avgPrepTime: p.AvgPrepTime,
		dailyDemand: p.DailyDemand,
	}
}

// SetQuantity sets absolute stock, clamped at 0.
func (f *FoodItem) SetQuantity(q int) {
	f.quantity = clamp(q)
}

func (f *FoodItem) Adjust(delta int) {
	f.quantity = clamp(f.quantity + delta)
}

// Deduct removes n units, flooring at 0. Returns the units actually removed.
func (f *FoodItem) Deduct(n int) int {
	if n <= 0 {
		return 0
	}
	if n > f.quantity {
		n = f.quantity
	}
	f.quantity -= n
	return n
}

func (f *FoodItem) HasStock(n int) bool {
	return n <= f.quantity
}

func (f *FoodItem) BelongsTo(canteenID string) bool {
	return f.canteenID == canteenID
}

func (f *FoodItem) ID() string        { return f.id }
func (f *FoodItem) Name() string      { return f.name }
func (f *FoodItem) Price() int64      { return f.price }
func (f *FoodItem) Image() string     { return f.image }
func (f *FoodItem) IsVeg() bool       { return f.isVeg }
func (f *FoodItem) Quantity() int     { return f.quantity }
func (f *FoodItem) CanteenID() string { return f.canteenID }
func (f *FoodItem) AvgPrepTime() int  { return f.avgPrepTime }
func (f *FoodItem) DailyDemand() int  { return f.dailyDemand }

func clamp(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
