package commands

import (
	"context"
	"errors"
	"log/slog"

	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/domain/wallet"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	CreateOrder(ctx context.Context, studentID string, req reqdto.CreateOrderRequest) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, canteenID string, orderID uuid.UUID, req reqdto.UpdateOrderStatusRequest) (*queries.OrderView, error)
}

type WalletSettings struct {
	InitialBalance int64
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	policy   order.Policy
	wallet   WalletSettings
	recorder shared.EventRecorder
	clock    clock.Clock
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	policy order.Policy,
	walletSettings WalletSettings,
	recorder shared.EventRecorder,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		policy:   policy,
		wallet:   walletSettings,
		recorder: recorder,
		clock:    clock,
	}
}

// CreateOrder resolves the lines server-side, prices them, checks the wallet and then
// debits, books the slot and appends the order in one unit of work.
func (c *orderCommandsImpl) CreateOrder(ctx context.Context, studentID string, req reqdto.CreateOrderRequest) (*queries.OrderView, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	var (
		created *order.Order
		booked  *slot.TimeSlot
		refusal string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Canteens().FindByID(ctx, req.CanteenID); err != nil {
			return notFoundAs(err, errs.ErrCanteenNotFound)
		}

		lines, err := c.resolveLines(ctx, tx, req)
		if err != nil {
			return err
		}

		ts, err := tx.Slots().Find(ctx, req.CanteenID, req.SlotTime)
		if err != nil {
			return notFoundAs(err, errs.ErrSlotNotFound)
		}

		now := c.clock.Now()
		o, err := order.NewOrder(order.NewOrderParams{
			StudentID:   studentID,
			StudentName: req.StudentName,
			CanteenID:   req.CanteenID,
			SlotLabel:   req.SlotTime,
			Items:       lines,
		}, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		w, err := shared.FindOrOpenWallet(ctx, tx, studentID, c.wallet.InitialBalance, now)
		if err != nil {
			return err
		}
		if !w.CanAfford(o.TotalAmount()) {
			refusal = "insufficient_funds"
			return order.ErrInsufficientFunds
		}
		if c.policy.EnforceSlotCapacity && ts.IsFull() {
			refusal = "slot_full"
			return order.ErrSlotFull
		}

		w.Debit(o.TotalAmount(), o.DebitDescription(), now)
		ts.Increment()

		if err := tx.Orders().Create(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if err := tx.Wallets().Save(ctx, w); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if err := tx.Slots().Save(ctx, ts); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}

		created, booked = o, ts
		return nil
	})
	if err != nil {
		if refusal != "" {
			c.recorder.OrderRefused(req.CanteenID, refusal)
		}
		return nil, err
	}

	c.recorder.OrderPlaced(created)
	c.recorder.SlotChanged(booked)
	slog.Info("order placed",
		"order_id", created.ID().String(),
		"student_id", created.StudentID(),
		"canteen_id", created.CanteenID(),
		"total", created.TotalAmount())

	return queries.NewOrderView(created), nil
}

func (c *orderCommandsImpl) resolveLines(ctx context.Context, tx shared.Tx, req reqdto.CreateOrderRequest) ([]order.LineItem, error) {
	lines := make([]order.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := tx.Catalog().FindByID(ctx, it.FoodItemID)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrFoodItemNotFound)
		}
		if !item.BelongsTo(req.CanteenID) {
			return nil, errs.Wrapf(errs.ErrFoodItemNotFound, "item %s is not sold by %s", it.FoodItemID, req.CanteenID)
		}
		lines = append(lines, order.LineItem{
			FoodItemID: item.ID(),
			Name:       item.Name(),
			UnitPrice:  item.Price(),
			IsVeg:      item.IsVeg(),
			Image:      item.Image(),
			Quantity:   it.Quantity,
		})
	}
	return lines, nil
}

// UpdateStatus drives the order state machine for a staff member of the owning canteen.
func (c *orderCommandsImpl) UpdateStatus(
	ctx context.Context,
	canteenID string,
	orderID uuid.UUID,
	req reqdto.UpdateOrderStatusRequest,
) (*queries.OrderView, error) {
	next, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		updated *order.Order
		touched []*catalog.FoodItem
		slotRel *slot.TimeSlot
		refund  int64
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			return notFoundAs(err, errs.ErrOrderNotFound)
		}
		if !o.BelongsTo(canteenID) {
			return errs.ErrOrderNotOwned
		}

		now := c.clock.Now()
		if err := o.Transition(next, req.Reason, now); err != nil {
			return err
		}

		switch next {
		case order.StatusAccepted:
			items, err := c.deductStock(ctx, tx, o)
			if err != nil {
				return err
			}
			touched = items
		case order.StatusRejected:
			w, err := shared.FindOrOpenWallet(ctx, tx, o.StudentID(), c.wallet.InitialBalance, now)
			if err != nil {
				return err
			}
			w.Refund(o.TotalAmount(), o.RefundDescription(req.Reason), now)
			if err := tx.Wallets().Save(ctx, w); err != nil {
				return errs.Mark(err, errs.ErrStoreOperationFailed)
			}
			refund = o.TotalAmount()

			if c.policy.ReleaseOnReject {
				ts, err := c.releaseSlot(ctx, tx, o)
				if err != nil {
					return err
				}
				slotRel = ts
			}
		}

		if err := tx.Orders().Save(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		updated = o
		return nil
	})
	if err != nil {
		if errors.Is(err, order.ErrInsufficientStock) {
			c.recorder.OrderRefused(canteenID, "insufficient_stock")
		}
		return nil, err
	}

	c.recorder.OrderTransitioned(updated)
	for _, item := range touched {
		c.recorder.StockChanged(item)
	}
	if slotRel != nil {
		c.recorder.SlotChanged(slotRel)
	}
	if refund > 0 {
		c.recorder.WalletCredited("refund", refund)
	}
	slog.Info("order status updated",
		"order_id", updated.ID().String(),
		"canteen_id", canteenID,
		"status", updated.Status().String())

	return queries.NewOrderView(updated), nil
}

// deductStock floors each item at zero. Under StrictAccept every item must cover
// the order's combined quantity first.
func (c *orderCommandsImpl) deductStock(ctx context.Context, tx shared.Tx, o *order.Order) ([]*catalog.FoodItem, error) {
	ids, need := o.ItemQuantities()
	names := make(map[string]string, len(ids))
	for _, li := range o.Items() {
		if _, ok := names[li.FoodItemID]; !ok {
			names[li.FoodItemID] = li.Name
		}
	}

	items := make([]*catalog.FoodItem, 0, len(ids))
	for _, id := range ids {
		item, err := tx.Catalog().FindByID(ctx, id)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
			}
			if c.policy.StrictAccept {
				return nil, errs.Wrapf(order.ErrInsufficientStock, "%s is no longer on the menu", names[id])
			}
			slog.Warn("accepted order references missing food item",
				"order_id", o.ID().String(), "food_item_id", id)
			continue
		}
		if c.policy.StrictAccept && !item.HasStock(need[id]) {
			return nil, errs.Wrapf(order.ErrInsufficientStock, "%s: requested %d, in stock %d", names[id], need[id], item.Quantity())
		}
		items = append(items, item)
	}

	for _, item := range items {
		item.Deduct(need[item.ID()])
		if err := tx.Catalog().Save(ctx, item); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return items, nil
}

func (c *orderCommandsImpl) releaseSlot(ctx context.Context, tx shared.Tx, o *order.Order) (*slot.TimeSlot, error) {
	ts, err := tx.Slots().Find(ctx, o.CanteenID(), o.SlotLabel())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("rejected order slot no longer exists",
				"order_id", o.ID().String(), "slot", o.SlotLabel())
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	ts.Release()
	if err := tx.Slots().Save(ctx, ts); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return ts, nil
}

func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, target)
	}
	return errs.Mark(err, errs.ErrStoreOperationFailed)
}
