package converter

import (
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/infra/state"
)

func FoodItemToRecord(f *catalog.FoodItem) state.FoodItemRecord {
	return state.FoodItemRecord{
		ID:          f.ID(),
		Name:        f.Name(),
		Price:       f.Price(),
		Image:       f.Image(),
		IsVeg:       f.IsVeg(),
		Quantity:    f.Quantity(),
		CanteenID:   f.CanteenID(),
		AvgPrepTime: f.AvgPrepTime(),
		DailyDemand: f.DailyDemand(),
	}
}

func FoodItemFromRecord(r state.FoodItemRecord) *catalog.FoodItem {
	return catalog.ReconstructFoodItem(catalog.FoodItemParams{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		IsVeg:       r.IsVeg,
		Quantity:    r.Quantity,
		CanteenID:   r.CanteenID,
		AvgPrepTime: r.AvgPrepTime,
		DailyDemand: r.DailyDemand,
	})
}

func TimeSlotToRecord(s *slot.TimeSlot) state.TimeSlotRecord {
	return state.TimeSlotRecord{
		Time:      s.Label(),
		Capacity:  s.Capacity(),
		Filled:    s.Filled(),
		CanteenID: s.CanteenID(),
	}
}

func TimeSlotFromRecord(r state.TimeSlotRecord) *slot.TimeSlot {
	return slot.ReconstructTimeSlot(r.CanteenID, r.Time, r.Capacity, r.Filled)
}
