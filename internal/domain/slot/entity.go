package slot

import (
	"errors"
	"strings"
)

var ErrInvalidSlot = errors.New("invalid time slot")

// AlmostFullRatio is the fill ratio above which a slot is reported as filling fast.
const AlmostFullRatio = 0.85

// TimeSlot is keyed by (canteenID, label); labels are not globally unique.
type TimeSlot struct {
	canteenID string
	label     string
	capacity  int
	filled    int
}

func NewTimeSlot(canteenID, label string, capacity, filled int) (*TimeSlot, error) {
	if strings.TrimSpace(canteenID) == "" || strings.TrimSpace(label) == "" {
		return nil, ErrInvalidSlot
	}
	if capacity < 0 || filled < 0 {
		return nil, ErrInvalidSlot
	}
	return ReconstructTimeSlot(canteenID, label, capacity, filled), nil
}

func ReconstructTimeSlot(canteenID, label string, capacity, filled int) *TimeSlot {
	return &TimeSlot{
		canteenID: canteenID,
		label:     label,
		capacity:  capacity,
		filled:    filled,
	}
}

// Increment books one more pickup. Capacity is not checked.
func (s *TimeSlot) Increment() {
	s.filled++
}

func (s *TimeSlot) Release() {
	if s.filled > 0 {
		s.filled--
	}
}

func (s *TimeSlot) Remaining() int {
	return s.capacity - s.filled
}

func (s *TimeSlot) IsFull() bool {
	return s.filled >= s.capacity
}

func (s *TimeSlot) FillRatio() float64 {
	if s.capacity <= 0 {
		if s.filled > 0 {
			return 1
		}
		return 0
	}
	return float64(s.filled) / float64(s.capacity)
}

func (s *TimeSlot) IsAlmostFull() bool {
	return s.FillRatio() > AlmostFullRatio
}

func (s *TimeSlot) Matches(canteenID, label string) bool {
	return s.canteenID == canteenID && s.label == label
}

func (s *TimeSlot) CanteenID() string { return s.canteenID }
func (s *TimeSlot) Label() string     { return s.label }
func (s *TimeSlot) Capacity() int     { return s.capacity }
func (s *TimeSlot) Filled() int       { return s.filled }
