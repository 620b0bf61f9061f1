package repository

import (
	"context"

	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository/converter"
	"campus-canteen/internal/infra/state"
)

type CatalogRepository struct {
	guard
	snap *state.Snapshot
}

func NewCatalogRepository(snap *state.Snapshot, readOnly bool) *CatalogRepository {
	return &CatalogRepository{guard: guard{readOnly: readOnly}, snap: snap}
}

func (r *CatalogRepository) FindByID(_ context.Context, id string) (*catalog.FoodItem, error) {
	for _, rec := range r.snap.FoodItems {
		if rec.ID == id {
			return converter.FoodItemFromRecord(rec), nil
		}
	}
	return nil, infra.NotFound("food item not found")
}

// ListByCanteen keeps seed order.
func (r *CatalogRepository) ListByCanteen(_ context.Context, canteenID string) ([]*catalog.FoodItem, error) {
	items := make([]*catalog.FoodItem, 0)
	for _, rec := range r.snap.FoodItems {
		if rec.CanteenID == canteenID {
			items = append(items, converter.FoodItemFromRecord(rec))
		}
	}
	return items, nil
}

func (r *CatalogRepository) Save(_ context.Context, item *catalog.FoodItem) error {
	if err := r.checkWritable("save food item"); err != nil {
		return err
	}

	rec := converter.FoodItemToRecord(item)
	for i := range r.snap.FoodItems {
		if r.snap.FoodItems[i].ID == rec.ID {
			r.snap.FoodItems[i] = rec
			return nil
		}
	}
	r.snap.FoodItems = append(r.snap.FoodItems, rec)
	return nil
}
