package components

import (
	"context"

	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/infra/blobstore"
	"campus-canteen/internal/infra/repository"
	"campus-canteen/internal/infra/uow"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/config"
	"campus-canteen/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		repository.SeedRoster,
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewUnitOfWork(cfg config.Config, store blobstore.Store, roster []*canteen.Canteen, clk clock.Clock) (*uow.MemoryUoW, error) {
	return uow.NewMemoryUoW(context.Background(), store, roster, uow.Settings{
		BlobKey:        cfg.Store.BlobKey,
		WriteTimeout:   cfg.Store.WriteTimeout,
		InitialBalance: cfg.Wallet.InitialBalance,
	}, clk)
}
