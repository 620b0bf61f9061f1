//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository"
	"campus-canteen/internal/infra/state"
	"campus-canteen/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	snap := state.Seed(seededAt, 500)
	repo := repository.NewCatalogRepository(snap, false)

	t.Run("lists items of one canteen in seed order", func(t *testing.T) {
		items, err := repo.ListByCanteen(ctx, "canteen-2")
		require.NoError(t, err)
		require.Len(t, items, 5)
		assert.Equal(t, "Fresh Orange Juice", items[0].Name())
		assert.Equal(t, "Banana Shake", items[4].Name())
	})

	t.Run("save replaces the stored record", func(t *testing.T) {
		item, err := repo.FindByID(ctx, "4")
		require.NoError(t, err)
		item.Adjust(-3)

		require.NoError(t, repo.Save(ctx, item))

		again, err := repo.FindByID(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, 5, again.Quantity())
		assert.Len(t, snap.FoodItems, 17)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "999")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSlotRepository(t *testing.T) {
	ctx := context.Background()
	snap := state.Seed(seededAt, 500)
	repo := repository.NewSlotRepository(snap, false)

	s, err := repo.Find(ctx, "canteen-1", "12:00 PM - 12:30 PM")
	require.NoError(t, err)
	assert.Equal(t, 28, s.Filled())
	assert.Equal(t, 30, s.Capacity())

	s.Increment()
	require.NoError(t, repo.Save(ctx, s))

	again, err := repo.Find(ctx, "canteen-1", "12:00 PM - 12:30 PM")
	require.NoError(t, err)
	assert.Equal(t, 29, again.Filled())

	_, err = repo.Find(ctx, "canteen-2", "9:00 AM - 9:30 AM")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	slots, err := repo.ListByCanteen(ctx, "canteen-3")
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestWalletRepository(t *testing.T) {
	ctx := context.Background()
	snap := state.Seed(seededAt, 500)
	repo := repository.NewWalletRepository(snap, false)

	w, err := repo.Find(ctx, state.DefaultStudentID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), w.Balance())

	w.Debit(120, "Order x", seededAt)
	require.NoError(t, repo.Save(ctx, w))

	_, err = repo.Find(ctx, "student-2")
	require.True(t, infra.IsKind(err, infra.KindNotFound))

	fresh, err := wallet.Open("student-2", 500, seededAt)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, fresh))

	got, err := repo.Find(ctx, state.DefaultStudentID)
	require.NoError(t, err)
	assert.Equal(t, int64(380), got.Balance())
	assert.Len(t, got.Transactions(), 2)
	assert.Len(t, snap.Wallets, 2)

	padded, err := repo.Find(ctx, " "+state.DefaultStudentID+" ")
	require.NoError(t, err)
	assert.Equal(t, int64(380), padded.Balance())

	require.NoError(t, repo.Save(ctx, wallet.ReconstructWallet(" student-2 ", 450, nil)))
	assert.Len(t, snap.Wallets, 2)
	again, err := repo.Find(ctx, "student-2")
	require.NoError(t, err)
	assert.Equal(t, int64(450), again.Balance())
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	snap := state.Seed(seededAt, 500)
	repo := repository.NewOrderRepository(snap, false)

	placed := builder.NewOrderBuilder().MustBuildDomain()
	other := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.StudentID = "student-2"
		b.CanteenID = "canteen-3"
	}).MustBuildDomain()

	require.NoError(t, repo.Create(ctx, placed))
	require.NoError(t, repo.Create(ctx, other))

	t.Run("round trips every field", func(t *testing.T) {
		got, err := repo.FindByID(ctx, placed.ID())
		require.NoError(t, err)
		if diff := cmp.Diff(placed, got, cmp.AllowUnexported(order.Order{})); diff != "" {
			t.Fatalf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("create rejects a duplicate id", func(t *testing.T) {
		err := repo.Create(ctx, placed)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("save persists a transition", func(t *testing.T) {
		got, err := repo.FindByID(ctx, placed.ID())
		require.NoError(t, err)
		require.NoError(t, got.Transition(order.StatusAccepted, "", seededAt.Add(time.Minute)))
		require.NoError(t, repo.Save(ctx, got))

		again, err := repo.FindByID(ctx, placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, again.Status())
		require.NotNil(t, again.AcceptedAt())
	})

	t.Run("filters by canteen and student", func(t *testing.T) {
		byCanteen, err := repo.ListByCanteen(ctx, "canteen-3")
		require.NoError(t, err)
		require.Len(t, byCanteen, 1)
		assert.Equal(t, other.ID(), byCanteen[0].ID())

		byStudent, err := repo.ListByStudent(ctx, "student-1")
		require.NoError(t, err)
		require.Len(t, byStudent, 1)
		assert.Equal(t, placed.ID(), byStudent[0].ID())
	})

	t.Run("save of an unknown order is not found", func(t *testing.T) {
		stray := builder.NewOrderBuilder().MustBuildDomain()
		err := repo.Save(ctx, stray)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = repo.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReadOnlyRepositoriesRefuseWrites(t *testing.T) {
	ctx := context.Background()
	snap := state.Seed(seededAt, 500)

	item, err := repository.NewCatalogRepository(snap, true).FindByID(ctx, "1")
	require.NoError(t, err)
	item.SetQuantity(0)

	err = repository.NewCatalogRepository(snap, true).Save(ctx, item)
	assert.True(t, infra.IsKind(err, infra.KindReadOnly))

	err = repository.NewOrderRepository(snap, true).Create(ctx, builder.NewOrderBuilder().MustBuildDomain())
	assert.True(t, infra.IsKind(err, infra.KindReadOnly))

	assert.Equal(t, 25, snap.FoodItems[0].Quantity)
	assert.Empty(t, snap.Orders)
}

func TestCanteenRepository(t *testing.T) {
	ctx := context.Background()
	roster, err := repository.SeedRoster()
	require.NoError(t, err)

	repo := repository.NewCanteenRepository(roster)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Main Canteen", all[0].Name())
	assert.NotEqual(t, "main123", all[0].PasswordHash())

	c, err := repo.FindByID(ctx, "canteen-3")
	require.NoError(t, err)
	assert.True(t, c.MatchesStaffID(" snack001 "))

	_, err = repo.FindByID(ctx, "canteen-9")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
