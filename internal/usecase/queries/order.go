package queries

import (
	"context"

	"campus-canteen/internal/domain/analytics"
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderQueries interface {
	ListByStudent(ctx context.Context, studentID string) ([]*OrderView, error)
	GetForStudent(ctx context.Context, studentID string, orderID uuid.UUID) (*OrderView, error)
	ListByCanteen(ctx context.Context, canteenID string, status *order.Status) ([]*OrderView, error)
	GetImpact(ctx context.Context, canteenID string, orderID uuid.UUID) (*OrderImpactView, error)
}

type orderQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOrderQueries(uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{uow: uow}
}

// ListByStudent returns the student's orders newest first.
func (q *orderQueriesImpl) ListByStudent(ctx context.Context, studentID string) ([]*OrderView, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	var views []*OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().ListByStudent(ctx, studentID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		views = NewOrderViews(reversed(orders))
		return nil
	})
	return views, err
}

// GetForStudent hides other students' orders behind not found.
func (q *orderQueriesImpl) GetForStudent(ctx context.Context, studentID string, orderID uuid.UUID) (*OrderView, error) {
	var view *OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			return notFoundAs(err, errs.ErrOrderNotFound)
		}
		if o.StudentID() != wallet.NormalizeStudentID(studentID) {
			return errs.ErrOrderNotFound
		}
		view = NewOrderView(o)
		return nil
	})
	return view, err
}

// ListByCanteen returns the canteen's orders newest first, optionally filtered by status.
func (q *orderQueriesImpl) ListByCanteen(ctx context.Context, canteenID string, status *order.Status) ([]*OrderView, error) {
	var views []*OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().ListByCanteen(ctx, canteenID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if status != nil {
			filtered := make([]*order.Order, 0, len(orders))
			for _, o := range orders {
				if o.Status() == *status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}
		views = NewOrderViews(reversed(orders))
		return nil
	})
	return views, err
}

// GetImpact previews what accepting the order would do to stock and its slot.
func (q *orderQueriesImpl) GetImpact(ctx context.Context, canteenID string, orderID uuid.UUID) (*OrderImpactView, error) {
	var view *OrderImpactView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			return notFoundAs(err, errs.ErrOrderNotFound)
		}
		if !o.BelongsTo(canteenID) {
			return errs.ErrOrderNotOwned
		}

		lookup, err := catalogLookup(ctx, tx, canteenID)
		if err != nil {
			return err
		}

		var ts *slot.TimeSlot
		found, err := tx.Slots().Find(ctx, o.CanteenID(), o.SlotLabel())
		switch {
		case err == nil:
			ts = found
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}

		lines := analytics.StockImpact(o, lookup)
		stock := make([]StockImpactView, len(lines))
		for i, l := range lines {
			stock[i] = StockImpactView{
				FoodItemID: l.FoodItemID,
				ItemName:   l.ItemName,
				Before:     l.Before,
				After:      l.After,
				IsLow:      l.IsLow,
			}
		}
		si := analytics.SlotImpact(ts)

		view = &OrderImpactView{
			Order:       NewOrderView(o),
			StockImpact: stock,
			SlotImpact: SlotImpactView{
				Before:     si.Before,
				After:      si.After,
				Capacity:   si.Capacity,
				IsOverload: si.IsOverload,
			},
			CanAccept: o.Status() == order.StatusNew && analytics.CanAccept(o, lookup),
		}
		return nil
	})
	return view, err
}

func catalogLookup(ctx context.Context, tx shared.Tx, canteenID string) (analytics.StockLookup, error) {
	items, err := tx.Catalog().ListByCanteen(ctx, canteenID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	byID := make(map[string]*catalog.FoodItem, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}
	return func(id string) (*catalog.FoodItem, bool) {
		it, ok := byID[id]
		return it, ok
	}, nil
}

func reversed(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, len(orders))
	for i, o := range orders {
		out[len(orders)-1-i] = o
	}
	return out
}
