package repository

import (
	"context"

	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository/converter"
	"campus-canteen/internal/infra/state"

	"github.com/google/uuid"
)

// OrderRepository keeps orders in placement order; callers decide presentation order.
type OrderRepository struct {
	guard
	snap *state.Snapshot
}

func NewOrderRepository(snap *state.Snapshot, readOnly bool) *OrderRepository {
	return &OrderRepository{guard: guard{readOnly: readOnly}, snap: snap}
}

func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if i := r.indexOf(id); i >= 0 {
		return converter.OrderFromRecord(r.snap.Orders[i]), nil
	}
	return nil, infra.NotFound("order not found")
}

func (r *OrderRepository) ListByCanteen(_ context.Context, canteenID string) ([]*order.Order, error) {
	return r.filter(func(rec state.OrderRecord) bool { return rec.CanteenID == canteenID }), nil
}

func (r *OrderRepository) ListByStudent(_ context.Context, studentID string) ([]*order.Order, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	return r.filter(func(rec state.OrderRecord) bool { return rec.StudentID == studentID }), nil
}

func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	if err := r.checkWritable("create order"); err != nil {
		return err
	}
	if r.indexOf(o.ID()) >= 0 {
		return infra.WrapRepoErr(infra.KindStoreFailure, "order already exists", nil)
	}
	r.snap.Orders = append(r.snap.Orders, converter.OrderToRecord(o))
	return nil
}

func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	if err := r.checkWritable("save order"); err != nil {
		return err
	}
	i := r.indexOf(o.ID())
	if i < 0 {
		return infra.NotFound("order not found")
	}
	r.snap.Orders[i] = converter.OrderToRecord(o)
	return nil
}

func (r *OrderRepository) filter(keep func(state.OrderRecord) bool) []*order.Order {
	orders := make([]*order.Order, 0)
	for _, rec := range r.snap.Orders {
		if keep(rec) {
			orders = append(orders, converter.OrderFromRecord(rec))
		}
	}
	return orders
}

func (r *OrderRepository) indexOf(id uuid.UUID) int {
	for i, rec := range r.snap.Orders {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
