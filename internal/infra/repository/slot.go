package repository

import (
	"context"

	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository/converter"
	"campus-canteen/internal/infra/state"
)

type SlotRepository struct {
	guard
	snap *state.Snapshot
}

func NewSlotRepository(snap *state.Snapshot, readOnly bool) *SlotRepository {
	return &SlotRepository{guard: guard{readOnly: readOnly}, snap: snap}
}

func (r *SlotRepository) Find(_ context.Context, canteenID, label string) (*slot.TimeSlot, error) {
	if i := r.indexOf(canteenID, label); i >= 0 {
		return converter.TimeSlotFromRecord(r.snap.TimeSlots[i]), nil
	}
	return nil, infra.NotFound("time slot not found")
}

func (r *SlotRepository) ListByCanteen(_ context.Context, canteenID string) ([]*slot.TimeSlot, error) {
	slots := make([]*slot.TimeSlot, 0)
	for _, rec := range r.snap.TimeSlots {
		if rec.CanteenID == canteenID {
			slots = append(slots, converter.TimeSlotFromRecord(rec))
		}
	}
	return slots, nil
}

func (r *SlotRepository) Save(_ context.Context, s *slot.TimeSlot) error {
	if err := r.checkWritable("save time slot"); err != nil {
		return err
	}

	rec := converter.TimeSlotToRecord(s)
	if i := r.indexOf(rec.CanteenID, rec.Time); i >= 0 {
		r.snap.TimeSlots[i] = rec
		return nil
	}
	r.snap.TimeSlots = append(r.snap.TimeSlots, rec)
	return nil
}

func (r *SlotRepository) indexOf(canteenID, label string) int {
	for i, rec := range r.snap.TimeSlots {
		if rec.CanteenID == canteenID && rec.Time == label {
			return i
		}
	}
	return -1
}
