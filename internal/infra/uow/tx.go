package uow

import (
	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/infra/repository"
	"campus-canteen/internal/infra/state"
	"campus-canteen/internal/usecase/shared"
)

type memoryTx struct {
	snap     *state.Snapshot
	roster   []*canteen.Canteen
	readOnly bool

	// Lazy-initialized repositories
	canteenRepo shared.CanteenRepository
	catalogRepo shared.CatalogRepository
	slotRepo    shared.SlotRepository
	walletRepo  shared.WalletRepository
	orderRepo   shared.OrderRepository
}

func newMemoryTx(snap *state.Snapshot, roster []*canteen.Canteen, readOnly bool) *memoryTx {
	return &memoryTx{snap: snap, roster: roster, readOnly: readOnly}
}

func (t *memoryTx) Canteens() shared.CanteenRepository {
	if t.canteenRepo == nil {
		t.canteenRepo = repository.NewCanteenRepository(t.roster)
	}
	return t.canteenRepo
}

func (t *memoryTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.snap, t.readOnly)
	}
	return t.catalogRepo
}

func (t *memoryTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.snap, t.readOnly)
	}
	return t.slotRepo
}

func (t *memoryTx) Wallets() shared.WalletRepository {
	if t.walletRepo == nil {
		t.walletRepo = repository.NewWalletRepository(t.snap, t.readOnly)
	}
	return t.walletRepo
}

func (t *memoryTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.snap, t.readOnly)
	}
	return t.orderRepo
}
