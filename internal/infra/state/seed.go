package state

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultStudentID   = "student-1"
	DefaultStudentName = "Rahul Kumar"
)

// CanteenRecord carries the staff password in clear; it is hashed when the roster is loaded.
type CanteenRecord struct {
	ID            string
	Name          string
	Type          string
	CrowdLevel    string
	StaffID       string
	StaffPassword string
}

func SeedCanteens() []CanteenRecord {
	return []CanteenRecord{
		{ID: "canteen-1", Name: "Main Canteen", Type: "main", CrowdLevel: "Medium", StaffID: "MAIN001", StaffPassword: "main123"},
		{ID: "canteen-2", Name: "Juice Shop", Type: "juice", CrowdLevel: "Low", StaffID: "JUICE001", StaffPassword: "juice123"},
		{ID: "canteen-3", Name: "Snack Counter", Type: "snack", CrowdLevel: "High", StaffID: "SNACK001", StaffPassword: "snack123"},
	}
}

var slotLabels = []string{
	"11:00 AM - 11:30 AM",
	"11:30 AM - 12:00 PM",
	"12:00 PM - 12:30 PM",
	"12:30 PM - 1:00 PM",
	"1:00 PM - 1:30 PM",
	"1:30 PM - 2:00 PM",
}

// Seed returns the initial stores used when no blob has been persisted yet.
func Seed(now time.Time, initialBalance int64) *Snapshot {
	s := &Snapshot{
		FoodItems: seedFoodItems(),
		Orders:    []OrderRecord{},
		TimeSlots: seedTimeSlots(),
		Wallets:   []WalletRecord{},
	}
	if initialBalance > 0 {
		s.Wallets = append(s.Wallets, WalletRecord{
			StudentID: DefaultStudentID,
			Balance:   initialBalance,
			Transactions: []TransactionRecord{{
				ID:          uuid.Must(uuid.NewV7()),
				Type:        "credit",
				Amount:      initialBalance,
				Description: "Initial balance",
				CreatedAt:   now,
			}},
		})
	}
	return s
}

func seedTimeSlots() []TimeSlotRecord {
	fills := []struct {
		canteenID string
		capacity  int
		filled    []int
	}{
		{canteenID: "canteen-1", capacity: 30, filled: []int{12, 20, 28, 25, 18, 10}},
		{canteenID: "canteen-2", capacity: 20, filled: []int{5, 8, 15, 12, 10, 6}},
		{canteenID: "canteen-3", capacity: 25, filled: []int{10, 18, 23, 20, 15, 8}},
	}

	slots := make([]TimeSlotRecord, 0, len(fills)*len(slotLabels))
	for _, f := range fills {
		for i, label := range slotLabels {
			slots = append(slots, TimeSlotRecord{
				Time:      label,
				Capacity:  f.capacity,
				Filled:    f.filled[i],
				CanteenID: f.canteenID,
			})
		}
	}
	return slots
}

func seedFoodItems() []FoodItemRecord {
	return []FoodItemRecord{
		// Main Canteen
		{ID: "1", Name: "Chicken Biryani", Price: 120, Image: "/chicken-biryani-rice.jpg", IsVeg: false, Quantity: 25, CanteenID: "canteen-1", AvgPrepTime: 8, DailyDemand: 45},
		{ID: "2", Name: "Paneer Butter Masala", Price: 90, Image: "/paneer-butter-masala-curry.jpg", IsVeg: true, Quantity: 12, CanteenID: "canteen-1", AvgPrepTime: 6, DailyDemand: 35},
		{ID: "3", Name: "Veg Fried Rice", Price: 70, Image: "/vegetable-fried-rice.png", IsVeg: true, Quantity: 40, CanteenID: "canteen-1", AvgPrepTime: 5, DailyDemand: 30},
		{ID: "4", Name: "Egg Curry", Price: 60, Image: "/egg-curry-indian.jpg", IsVeg: false, Quantity: 8, CanteenID: "canteen-1", AvgPrepTime: 5, DailyDemand: 20},
		{ID: "5", Name: "Veg Thali", Price: 100, Image: "/vegetarian-thali-indian-meal.jpg", IsVeg: true, Quantity: 20, CanteenID: "canteen-1", AvgPrepTime: 4, DailyDemand: 40},
		{ID: "6", Name: "Fish Curry", Price: 130, Image: "/fish-curry-indian.jpg", IsVeg: false, Quantity: 15, CanteenID: "canteen-1", AvgPrepTime: 10, DailyDemand: 18},

		// Juice Shop
		{ID: "7", Name: "Fresh Orange Juice", Price: 40, Image: "/fresh-orange-juice-glass.jpg", IsVeg: true, Quantity: 50, CanteenID: "canteen-2", AvgPrepTime: 2, DailyDemand: 60},
		{ID: "8", Name: "Mango Lassi", Price: 45, Image: "/mango-lassi.png", IsVeg: true, Quantity: 35, CanteenID: "canteen-2", AvgPrepTime: 2, DailyDemand: 50},
		{ID: "9", Name: "Cold Coffee", Price: 50, Image: "/cold-coffee-drink.jpg", IsVeg: true, Quantity: 40, CanteenID: "canteen-2", AvgPrepTime: 3, DailyDemand: 55},
		{ID: "10", Name: "Watermelon Juice", Price: 35, Image: "/watermelon-juice-fresh.jpg", IsVeg: true, Quantity: 30, CanteenID: "canteen-2", AvgPrepTime: 2, DailyDemand: 40},
		{ID: "11", Name: "Banana Shake", Price: 45, Image: "/banana-milkshake.jpg", IsVeg: true, Quantity: 25, CanteenID: "canteen-2", AvgPrepTime: 2, DailyDemand: 35},

		// Snack Counter
		{ID: "12", Name: "Masala Dosa", Price: 50, Image: "/masala-dosa-south-indian.png", IsVeg: true, Quantity: 35, CanteenID: "canteen-3", AvgPrepTime: 4, DailyDemand: 50},
		{ID: "13", Name: "Vada Pav", Price: 25, Image: "/vada-pav-indian-snack.jpg", IsVeg: true, Quantity: 45, CanteenID: "canteen-3", AvgPrepTime: 2, DailyDemand: 70},
		{ID: "14", Name: "Samosa", Price: 15, Image: "/samosa-indian-snack.jpg", IsVeg: true, Quantity: 60, CanteenID: "canteen-3", AvgPrepTime: 1, DailyDemand: 80},
		{ID: "15", Name: "Idli Vada", Price: 40, Image: "/idli-vada-sambar.jpg", IsVeg: true, Quantity: 30, CanteenID: "canteen-3", AvgPrepTime: 3, DailyDemand: 45},
		{ID: "16", Name: "Filter Coffee", Price: 20, Image: "/south-indian-filter-coffee.jpg", IsVeg: true, Quantity: 100, CanteenID: "canteen-3", AvgPrepTime: 2, DailyDemand: 120},
		{ID: "17", Name: "Chicken Momos", Price: 60, Image: "/chicken-momos-dumplings.jpg", IsVeg: false, Quantity: 25, CanteenID: "canteen-3", AvgPrepTime: 5, DailyDemand: 40},
	}
}
