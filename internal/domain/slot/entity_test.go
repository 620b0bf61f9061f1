//go:build unit

package slot_test

import (
	"testing"

	"campus-canteen/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot_Flags(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		filled     int
		remaining  int
		full       bool
		almostFull bool
	}{
		{name: "quiet", capacity: 30, filled: 12, remaining: 18},
		{name: "exactly 85 percent is not almost full", capacity: 20, filled: 17, remaining: 3},
		{name: "above 85 percent", capacity: 30, filled: 28, remaining: 2, almostFull: true},
		{name: "at capacity", capacity: 25, filled: 25, remaining: 0, full: true, almostFull: true},
		{name: "overbooked", capacity: 25, filled: 27, remaining: -2, full: true, almostFull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := slot.NewTimeSlot("canteen-1", "12:00 PM - 12:30 PM", tt.capacity, tt.filled)
			require.NoError(t, err)

			assert.Equal(t, tt.remaining, s.Remaining())
			assert.Equal(t, tt.full, s.IsFull())
			assert.Equal(t, tt.almostFull, s.IsAlmostFull())
		})
	}
}

func TestTimeSlot_IncrementIgnoresCapacity(t *testing.T) {
	s, err := slot.NewTimeSlot("canteen-1", "12:00 PM - 12:30 PM", 1, 1)
	require.NoError(t, err)

	s.Increment()
	assert.Equal(t, 2, s.Filled())
}

func TestTimeSlot_ReleaseFloorsAtZero(t *testing.T) {
	s, err := slot.NewTimeSlot("canteen-1", "12:00 PM - 12:30 PM", 10, 1)
	require.NoError(t, err)

	s.Release()
	s.Release()
	assert.Equal(t, 0, s.Filled())
}

func TestNewTimeSlot_Invalid(t *testing.T) {
	_, err := slot.NewTimeSlot("canteen-1", "", 10, 0)
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)

	_, err = slot.NewTimeSlot("canteen-1", "11:00 AM - 11:30 AM", 10, -1)
	assert.ErrorIs(t, err, slot.ErrInvalidSlot)
}
