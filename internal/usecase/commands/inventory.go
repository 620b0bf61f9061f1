package commands

import (
	"context"
	"log/slog"

	"campus-canteen/internal/domain/catalog"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/internal/usecase/shared"
)

type InventoryCommands interface {
	SetStock(ctx context.Context, canteenID, itemID string, req reqdto.SetStockRequest) (*queries.FoodItemView, error)
	AdjustStock(ctx context.Context, canteenID, itemID string, req reqdto.AdjustStockRequest) (*queries.FoodItemView, error)
}

type inventoryCommandsImpl struct {
	uow      shared.UnitOfWork
	recorder shared.EventRecorder
}

func NewInventoryCommands(uow shared.UnitOfWork, recorder shared.EventRecorder) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:      uow,
		recorder: recorder,
	}
}

// SetStock overwrites the stock level; negative input is clamped to zero.
func (c *inventoryCommandsImpl) SetStock(ctx context.Context, canteenID, itemID string, req reqdto.SetStockRequest) (*queries.FoodItemView, error) {
	if req.Quantity == nil {
		return nil, errs.Wrap(errs.ErrDomainValidation, "quantity is required")
	}
	qty := *req.Quantity
	return c.mutate(ctx, canteenID, itemID, func(item *catalog.FoodItem) {
		item.SetQuantity(qty)
	})
}

func (c *inventoryCommandsImpl) AdjustStock(ctx context.Context, canteenID, itemID string, req reqdto.AdjustStockRequest) (*queries.FoodItemView, error) {
	return c.mutate(ctx, canteenID, itemID, func(item *catalog.FoodItem) {
		item.Adjust(req.Delta)
	})
}

func (c *inventoryCommandsImpl) mutate(ctx context.Context, canteenID, itemID string, apply func(*catalog.FoodItem)) (*queries.FoodItemView, error) {
	var updated *catalog.FoodItem
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Catalog().FindByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, errs.ErrFoodItemNotFound)
		}
		// Staff only see their own canteen's items.
		if !item.BelongsTo(canteenID) {
			return errs.ErrFoodItemNotFound
		}
		apply(item)
		if err := tx.Catalog().Save(ctx, item); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recorder.StockChanged(updated)
	slog.Info("stock updated", "canteen_id", canteenID, "food_item_id", itemID, "quantity", updated.Quantity())

	view := queries.NewFoodItemView(updated)
	return &view, nil
}
