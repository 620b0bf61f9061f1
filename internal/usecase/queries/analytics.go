package queries

import (
	"context"

	"campus-canteen/internal/domain/analytics"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/shared"
)

// LowStockThreshold lists an item on the dashboard once stock drops below it.
const LowStockThreshold = 10

type AnalyticsQueries interface {
	DelayedOrders(ctx context.Context, canteenID string) ([]*OrderView, error)
	WaitingStudents(ctx context.Context, canteenID string) (int, error)
	Sellout(ctx context.Context, canteenID, itemID string) (*SelloutView, error)
	Suggestions(ctx context.Context, canteenID string) ([]SuggestionView, error)
	Dashboard(ctx context.Context, canteenID string) (*DashboardView, error)
}

type analyticsQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAnalyticsQueries(uow shared.UnitOfWork, clock clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{
		uow:   uow,
		clock: clock,
	}
}

func (q *analyticsQueriesImpl) snapshot(ctx context.Context, tx shared.Tx, canteenID string) (analytics.Snapshot, error) {
	items, err := tx.Catalog().ListByCanteen(ctx, canteenID)
	if err != nil {
		return analytics.Snapshot{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	orders, err := tx.Orders().ListByCanteen(ctx, canteenID)
	if err != nil {
		return analytics.Snapshot{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	slots, err := tx.Slots().ListByCanteen(ctx, canteenID)
	if err != nil {
		return analytics.Snapshot{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return analytics.Snapshot{
		Items:  items,
		Orders: orders,
		Slots:  slots,
		Now:    q.clock.Now(),
	}, nil
}

func (q *analyticsQueriesImpl) DelayedOrders(ctx context.Context, canteenID string) ([]*OrderView, error) {
	var views []*OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().ListByCanteen(ctx, canteenID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		views = NewOrderViews(analytics.DelayedOrders(orders, q.clock.Now()))
		return nil
	})
	return views, err
}

func (q *analyticsQueriesImpl) WaitingStudents(ctx context.Context, canteenID string) (int, error) {
	var n int
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().ListByCanteen(ctx, canteenID)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		n = analytics.WaitingStudents(orders)
		return nil
	})
	return n, err
}

func (q *analyticsQueriesImpl) Sellout(ctx context.Context, canteenID, itemID string) (*SelloutView, error) {
	var view *SelloutView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Catalog().FindByID(ctx, itemID)
		if err != nil {
			return notFoundAs(err, errs.ErrFoodItemNotFound)
		}
		if !item.BelongsTo(canteenID) {
			return errs.ErrFoodItemNotFound
		}
		view = &SelloutView{
			FoodItemID:  item.ID(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			DailyDemand: item.DailyDemand(),
		}
		if eta, ok := analytics.PredictSellout(item.Quantity(), item.DailyDemand()); ok {
			view.SelloutIn = &eta
		}
		return nil
	})
	return view, err
}

func (q *analyticsQueriesImpl) Suggestions(ctx context.Context, canteenID string) ([]SuggestionView, error) {
	var views []SuggestionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := q.snapshot(ctx, tx, canteenID)
		if err != nil {
			return err
		}
		views = NewSuggestionViews(analytics.Suggestions(snap))
		return nil
	})
	return views, err
}

// Dashboard summarises a canteen's queue, stock and slots from one consistent snapshot.
func (q *analyticsQueriesImpl) Dashboard(ctx context.Context, canteenID string) (*DashboardView, error) {
	var view *DashboardView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Canteens().FindByID(ctx, canteenID)
		if err != nil {
			return notFoundAs(err, errs.ErrCanteenNotFound)
		}
		snap, err := q.snapshot(ctx, tx, canteenID)
		if err != nil {
			return err
		}

		counts := make(map[string]int, len(order.AllStatuses()))
		for _, s := range order.AllStatuses() {
			counts[s.String()] = 0
		}
		var revenue int64
		for _, o := range snap.Orders {
			counts[o.Status().String()]++
			if o.Status() != order.StatusRejected {
				revenue += o.TotalAmount()
			}
		}

		lowStock := make([]FoodItemView, 0)
		for _, item := range snap.Items {
			if item.Quantity() < LowStockThreshold {
				lowStock = append(lowStock, NewFoodItemView(item))
			}
		}
		filling := make([]SlotView, 0)
		for _, s := range snap.Slots {
			if s.IsAlmostFull() {
				filling = append(filling, NewSlotView(s))
			}
		}

		view = &DashboardView{
			Canteen:          NewCanteenView(c),
			StatusCounts:     counts,
			WaitingStudents:  analytics.WaitingStudents(snap.Orders),
			DelayedOrders:    NewOrderViews(analytics.DelayedOrders(snap.Orders, snap.Now)),
			LowStockItems:    lowStock,
			SlotsFillingFast: filling,
			Revenue:          revenue,
		}
		return nil
	})
	return view, err
}
