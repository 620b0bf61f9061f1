package queries

import (
	"context"

	"campus-canteen/internal/infra"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/shared"
)

type CatalogQueries interface {
	ListCanteens(ctx context.Context) ([]*CanteenView, error)
	GetCanteen(ctx context.Context, canteenID string) (*CanteenView, error)
	GetMenu(ctx context.Context, canteenID string) ([]FoodItemView, error)
	ListSlots(ctx context.Context, canteenID string) ([]SlotView, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

func (q *catalogQueriesImpl) ListCanteens(ctx context.Context) ([]*CanteenView, error) {
	var views []*CanteenView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		canteens, err := tx.Canteens().List(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		views = make([]*CanteenView, len(canteens))
		for i, c := range canteens {
			views[i] = NewCanteenView(c)
		}
		return nil
	})
	return views, err
}

func (q *catalogQueriesImpl) GetCanteen(ctx context.Context, canteenID string) (*CanteenView, error) {
	var view *CanteenView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Canteens().FindByID(ctx, canteenID)
		if err != nil {
			return notFoundAs(err, errs.ErrCanteenNotFound)
		}
		view = NewCanteenView(c)
		return nil
	})
	return view, err
}

// GetMenu lists the canteen's items in definition order with their sellout forecast.
func (q *catalogQueriesImpl) GetMenu(ctx context.Context, canteenID string) ([]FoodItemView, error) {
	var views []FoodItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Canteens().FindByID(ctx, canteenID); err != nil {
			return notFoundAs(err, errs.ErrCanteenNotFound)
		}
		items, err := tx.Catalog().ListByCanteen(ctx, canteenID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		views = make([]FoodItemView, len(items))
		for i, item := range items {
			views[i] = NewFoodItemView(item)
		}
		return nil
	})
	return views, err
}

func (q *catalogQueriesImpl) ListSlots(ctx context.Context, canteenID string) ([]SlotView, error) {
	var views []SlotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Canteens().FindByID(ctx, canteenID); err != nil {
			return notFoundAs(err, errs.ErrCanteenNotFound)
		}
		slots, err := tx.Slots().ListByCanteen(ctx, canteenID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		views = make([]SlotView, len(slots))
		for i, s := range slots {
			views[i] = NewSlotView(s)
		}
		return nil
	})
	return views, err
}

func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, target)
	}
	return errs.Mark(err, errs.ErrStoreOperationFailed)
}
