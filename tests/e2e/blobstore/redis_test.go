//go:build e2e

package blobstore_test

import (
	"context"
	"net"
	"testing"
	"time"

	"campus-canteen/internal/infra/blobstore"
	"campus-canteen/internal/infra/db"
	"campus-canteen/internal/infra/state"
	"campus-canteen/internal/pkg/config"
	"campus-canteen/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()

	container, err := e2e.StartGenericContainer(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, 120)
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(ctx)
	})

	info, err := e2e.GetContainerHostPort(container, "6379/tcp")
	require.NoError(t, err)
	return config.RedisConfig{Addr: net.JoinHostPort(info.Host, info.Port.Port())}
}

func TestRedisStore(t *testing.T) {
	ctx := t.Context()
	rdb, cleanup, err := db.ConnectRedis(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := blobstore.NewBreakerStore(blobstore.NewRedisStore(rdb), blobstore.BreakerSettings{
		Name:        "redis-e2e",
		MaxFailures: 3,
		OpenTimeout: time.Second,
	})

	t.Run("missing key reports not found", func(t *testing.T) {
		_, err := store.Get(ctx, "canteen-data-missing")
		require.ErrorIs(t, err, blobstore.ErrBlobNotFound)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		seed := state.Seed(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), 500)
		data, err := seed.Marshal()
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "canteen-data-v2", data))

		got, err := store.Get(ctx, "canteen-data-v2")
		require.NoError(t, err)
		snap, err := state.Unmarshal(got)
		require.NoError(t, err)
		require.Len(t, snap.FoodItems, len(seed.FoodItems))
		require.Equal(t, seed.Wallets[0].Balance, snap.Wallets[0].Balance)
	})
}
