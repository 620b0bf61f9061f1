package bootstrap

import (
	"context"
	"log/slog"

	"campus-canteen/internal/infra/blobstore"
	"campus-canteen/internal/infra/db"
	"campus-canteen/internal/pkg/config"
	"campus-canteen/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBlobStore,
	),
)

// NewBlobStore picks the blob store for STORE_DRIVER. Remote stores sit behind a circuit breaker.
func NewBlobStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (blobstore.Store, error) {
	ctx := context.Background()
	breaker := blobstore.BreakerSettings{
		Name:        cfg.Store.Driver,
		MaxFailures: cfg.Store.BreakerMaxFailures,
		OpenTimeout: cfg.Store.BreakerOpenTimeout,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-process blob store, data is lost on restart")
		return blobstore.NewMemoryStore(), nil

	case config.StoreDriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		store := blobstore.NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return blobstore.NewBreakerStore(store, breaker), nil

	case config.StoreDriverRedis:
		rdb, cleanup, err := db.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return blobstore.NewBreakerStore(blobstore.NewRedisStore(rdb), breaker), nil

	default:
		return nil, errs.Newf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
