//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"campus-canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches marker and keeps message", func(t *testing.T) {
		base := errors.New("disk full")
		marked := errs.Mark(base, errs.ErrStoreOperationFailed)

		require.Error(t, marked)
		assert.ErrorIs(t, marked, errs.ErrStoreOperationFailed)
		assert.Contains(t, marked.Error(), "disk full")
	})

	t.Run("nil error returns the marker itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrOrderNotFound, errs.Mark(nil, errs.ErrOrderNotFound))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrapf(errs.ErrSlotNotFound, "slot %s", "11:00 AM - 11:30 AM")
	assert.ErrorIs(t, wrapped, errs.ErrSlotNotFound)
	assert.Contains(t, wrapped.Error(), "11:00 AM - 11:30 AM")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[0])
}
