package shared

import (
	"context"

	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/domain/catalog"
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/slot"
	"campus-canteen/internal/domain/wallet"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: exclusive, all-or-nothing unit for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for multi-store reads; repositories refuse writes
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Canteens() CanteenRepository
	Catalog() CatalogRepository
	Slots() SlotRepository
	Wallets() WalletRepository
	Orders() OrderRepository
}

type CanteenRepository interface {
	List(ctx context.Context) ([]*canteen.Canteen, error)
	FindByID(ctx context.Context, id string) (*canteen.Canteen, error)
}

type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (*catalog.FoodItem, error)
	ListByCanteen(ctx context.Context, canteenID string) ([]*catalog.FoodItem, error)
	Save(ctx context.Context, item *catalog.FoodItem) error
}

type SlotRepository interface {
	Find(ctx context.Context, canteenID, label string) (*slot.TimeSlot, error)
	ListByCanteen(ctx context.Context, canteenID string) ([]*slot.TimeSlot, error)
	Save(ctx context.Context, s *slot.TimeSlot) error
}

type WalletRepository interface {
	Find(ctx context.Context, studentID string) (*wallet.Wallet, error)
	Save(ctx context.Context, w *wallet.Wallet) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByCanteen(ctx context.Context, canteenID string) ([]*order.Order, error)
	ListByStudent(ctx context.Context, studentID string) ([]*order.Order, error)
	Create(ctx context.Context, o *order.Order) error
	Save(ctx context.Context, o *order.Order) error
}
