//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFrom_OrderImpact(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	created := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	view := &queries.OrderImpactView{
		Order: &queries.OrderView{
			ID:          id,
			StudentID:   "student-1",
			CanteenID:   "canteen-1",
			SlotTime:    "12:00 PM - 12:30 PM",
			Items:       []queries.OrderLineView{{FoodItemID: "1", Name: "Chicken Biryani", UnitPrice: 120, Quantity: 2, Subtotal: 240}},
			TotalAmount: 240,
			Status:      "New",
			CreatedAt:   created,
		},
		StockImpact: []queries.StockImpactView{{FoodItemID: "1", ItemName: "Chicken Biryani", Before: 25, After: 23}},
		SlotImpact:  queries.SlotImpactView{Before: 45, After: 46, Capacity: 50},
		CanAccept:   true,
	}

	got, err := resdto.From[resdto.OrderImpactResponse](view)
	require.NoError(t, err)

	want := resdto.OrderImpactResponse{
		Order: &resdto.OrderResponse{
			ID:          id,
			StudentID:   "student-1",
			CanteenID:   "canteen-1",
			SlotTime:    "12:00 PM - 12:30 PM",
			Items:       []resdto.OrderLineResponse{{FoodItemID: "1", Name: "Chicken Biryani", UnitPrice: 120, Quantity: 2, Subtotal: 240}},
			TotalAmount: 240,
			Status:      "New",
			CreatedAt:   created,
		},
		StockImpact: []resdto.StockImpactResponse{{FoodItemID: "1", ItemName: "Chicken Biryani", Before: 25, After: 23}},
		SlotImpact:  resdto.SlotImpactResponse{Before: 45, After: 46, Capacity: 50},
		CanAccept:   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrderImpactResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEach_EmptyStaysEmpty(t *testing.T) {
	got, err := resdto.FromEach[resdto.OrderResponse]([]*queries.OrderView{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
