//go:build unit || e2e

package builder

import (
	"campus-canteen/internal/domain/catalog"
)

type FoodItemBuilder struct {
	Params catalog.FoodItemParams
}

func NewFoodItemBuilder() *FoodItemBuilder {
	return &FoodItemBuilder{
		Params: catalog.FoodItemParams{
			ID:          "1",
			Name:        "Chicken Biryani",
			Price:       120,
			Image:       "/chicken-biryani-rice.jpg",
			IsVeg:       false,
			Quantity:    25,
			CanteenID:   "canteen-1",
			AvgPrepTime: 8,
			DailyDemand: 45,
		},
	}
}

func (b *FoodItemBuilder) With(mutate func(*catalog.FoodItemParams)) *FoodItemBuilder {
	mutate(&b.Params)
	return b
}

func (b *FoodItemBuilder) WithStock(quantity, dailyDemand int) *FoodItemBuilder {
	b.Params.Quantity = quantity
	b.Params.DailyDemand = dailyDemand
	return b
}

func (b *FoodItemBuilder) BuildDomain() *catalog.FoodItem {
	return catalog.ReconstructFoodItem(b.Params)
}
