//go:build unit || e2e

package storetest

import (
	"context"
	"testing"
	"time"

	"campus-canteen/internal/infra/blobstore"
	"campus-canteen/internal/infra/repository"
	"campus-canteen/internal/infra/uow"
	"campus-canteen/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

const BlobKey = "canteen-data-test"

// Opening time used by seeded fixtures.
var Now = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

type Env struct {
	UoW   *uow.MemoryUoW
	Store *blobstore.MemoryStore
	Clock *clock.MockClock
}

// NewEnv returns a seeded unit of work backed by an in-memory blob.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	roster, err := repository.SeedRoster()
	require.NoError(t, err)

	store := blobstore.NewMemoryStore()
	clk := clock.NewMockClock(Now)
	u, err := uow.NewMemoryUoW(context.Background(), store, roster, uow.Settings{
		BlobKey:        BlobKey,
		WriteTimeout:   time.Second,
		InitialBalance: 500,
	}, clk)
	require.NoError(t, err)

	return &Env{UoW: u, Store: store, Clock: clk}
}
