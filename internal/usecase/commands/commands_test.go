//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campus-canteen/internal/domain/order"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/pkg/jwt"
	"campus-canteen/internal/usecase/commands"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/internal/usecase/shared"
	"campus-canteen/tests/common/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	student   = "student-1"
	mainSlot  = "12:00 PM - 12:30 PM"
	snackSlot = "11:00 AM - 11:30 AM"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	env       *storetest.Env
	orders    commands.OrderCommands
	inventory commands.InventoryCommands
	catalog   queries.CatalogQueries
	wallets   queries.WalletQueries
}

func TestOrderCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.env = storetest.NewEnv(s.T())
	s.usePolicy(order.DefaultPolicy())
	s.inventory = commands.NewInventoryCommands(s.env.UoW, shared.NopRecorder{})
	s.catalog = queries.NewCatalogQueries(s.env.UoW)
	s.wallets = queries.NewWalletQueries(s.env.UoW, 500, s.env.Clock)
}

func (s *OrderCommandsTestSuite) usePolicy(p order.Policy) {
	s.orders = commands.NewOrderCommands(s.env.UoW, p, commands.WalletSettings{InitialBalance: 500}, shared.NopRecorder{}, s.env.Clock)
}

func (s *OrderCommandsTestSuite) place(canteenID, slotTime string, items ...reqdto.OrderItemRequest) (*queries.OrderView, error) {
	return s.orders.CreateOrder(s.ctx, student, reqdto.CreateOrderRequest{
		CanteenID:   canteenID,
		StudentName: "Rahul Kumar",
		SlotTime:    slotTime,
		Items:       items,
	})
}

func (s *OrderCommandsTestSuite) mustPlace(canteenID, slotTime string, items ...reqdto.OrderItemRequest) *queries.OrderView {
	v, err := s.place(canteenID, slotTime, items...)
	s.Require().NoError(err)
	return v
}

func (s *OrderCommandsTestSuite) transition(canteenID string, id uuid.UUID, status, reason string) (*queries.OrderView, error) {
	return s.orders.UpdateStatus(s.ctx, canteenID, id, reqdto.UpdateOrderStatusRequest{Status: status, Reason: reason})
}

func (s *OrderCommandsTestSuite) balance() int64 {
	w, err := s.wallets.GetWallet(s.ctx, student)
	s.Require().NoError(err)
	return w.Balance
}

func (s *OrderCommandsTestSuite) stock(canteenID, itemID string) int {
	menu, err := s.catalog.GetMenu(s.ctx, canteenID)
	s.Require().NoError(err)
	for _, it := range menu {
		if it.ID == itemID {
			return it.Quantity
		}
	}
	s.FailNow("item not on menu", itemID)
	return 0
}

func (s *OrderCommandsTestSuite) slotFilled(canteenID, label string) int {
	slots, err := s.catalog.ListSlots(s.ctx, canteenID)
	s.Require().NoError(err)
	for _, sl := range slots {
		if sl.Label == label {
			return sl.Filled
		}
	}
	s.FailNow("slot not found", label)
	return 0
}

func item(id string, qty int) reqdto.OrderItemRequest {
	return reqdto.OrderItemRequest{FoodItemID: id, Quantity: qty}
}

func (s *OrderCommandsTestSuite) TestCreateOrder_DebitsWalletAndBooksSlot() {
	v := s.mustPlace("canteen-1", mainSlot, item("1", 2), item("3", 1))

	s.Equal(int64(310), v.TotalAmount)
	s.Equal(order.StatusNew.String(), v.Status)
	s.Equal(mainSlot, v.SlotTime)
	s.Len(v.Items, 2)

	w, err := s.wallets.GetWallet(s.ctx, student)
	s.Require().NoError(err)
	s.Equal(int64(190), w.Balance)
	s.Equal("debit", w.Transactions[0].Kind)
	s.Equal("Order "+v.ID.String(), w.Transactions[0].Description)

	s.Equal(29, s.slotFilled("canteen-1", mainSlot))
	// stock moves only on accept
	s.Equal(25, s.stock("canteen-1", "1"))
}

func (s *OrderCommandsTestSuite) TestPaddedStudentIDSharesTheWallet() {
	v := s.mustPlace("canteen-1", mainSlot, item("1", 2))
	s.Equal(int64(260), s.balance())

	padded := " " + student + "\t"

	w, err := s.wallets.GetWallet(s.ctx, padded)
	s.Require().NoError(err)
	s.Equal(int64(260), w.Balance)
	s.Len(w.Transactions, 2)

	topUps := commands.NewWalletCommands(s.env.UoW, commands.TopUpSettings{InitialBalance: 500, MaxAmount: 5000}, shared.NopRecorder{}, s.env.Clock)
	w, err = topUps.TopUp(s.ctx, padded, reqdto.TopUpRequest{Amount: 40})
	s.Require().NoError(err)
	s.Equal(int64(300), w.Balance)

	_, err = s.orders.CreateOrder(s.ctx, padded, reqdto.CreateOrderRequest{
		CanteenID:   "canteen-1",
		StudentName: "Rahul Kumar",
		SlotTime:    mainSlot,
		Items:       []reqdto.OrderItemRequest{item("3", 1)},
	})
	s.Require().NoError(err)

	w, err = s.wallets.GetWallet(s.ctx, student)
	s.Require().NoError(err)
	s.Equal(int64(230), w.Balance)
	s.Len(w.Transactions, 4)
	s.Equal("Order "+v.ID.String(), w.Transactions[2].Description)
}

func (s *OrderCommandsTestSuite) TestCreateOrder_InsufficientFundsChangesNothing() {
	_, err := s.place("canteen-1", mainSlot, item("6", 4))

	s.ErrorIs(err, order.ErrInsufficientFunds)
	s.Equal(int64(500), s.balance())
	s.Equal(28, s.slotFilled("canteen-1", mainSlot))
}

func (s *OrderCommandsTestSuite) TestCreateOrder_ExactBalanceIsAffordable() {
	s.mustPlace("canteen-1", mainSlot, item("5", 5))

	s.Equal(int64(0), s.balance())
}

func (s *OrderCommandsTestSuite) TestCreateOrder_RejectsUnknownReferences() {
	_, err := s.place("canteen-9", mainSlot, item("1", 1))
	s.True(errs.Is(err, errs.ErrCanteenNotFound))

	_, err = s.place("canteen-1", mainSlot, item("404", 1))
	s.True(errs.Is(err, errs.ErrFoodItemNotFound))

	// Mango Lassi is sold by the juice shop
	_, err = s.place("canteen-1", mainSlot, item("8", 1))
	s.True(errs.Is(err, errs.ErrFoodItemNotFound))

	_, err = s.place("canteen-1", "4:00 PM - 4:30 PM", item("1", 1))
	s.True(errs.Is(err, errs.ErrSlotNotFound))

	s.Equal(int64(500), s.balance())
}

func (s *OrderCommandsTestSuite) TestCreateOrder_OverbooksByDefault() {
	for i := 0; i < 3; i++ {
		s.mustPlace("canteen-1", mainSlot, item("3", 1))
	}
	s.Equal(31, s.slotFilled("canteen-1", mainSlot))
}

func (s *OrderCommandsTestSuite) TestCreateOrder_EnforcedSlotCapacity() {
	s.usePolicy(order.Policy{StrictAccept: true, EnforceSlotCapacity: true})

	s.mustPlace("canteen-1", mainSlot, item("3", 1))
	s.mustPlace("canteen-1", mainSlot, item("3", 1))
	_, err := s.place("canteen-1", mainSlot, item("3", 1))

	s.ErrorIs(err, order.ErrSlotFull)
	s.Equal(30, s.slotFilled("canteen-1", mainSlot))
	s.Equal(int64(360), s.balance())
}

func (s *OrderCommandsTestSuite) TestLifecycle_AcceptDeductsStockOnce() {
	v := s.mustPlace("canteen-1", mainSlot, item("4", 3))

	_, err := s.transition("canteen-1", v.ID, "Accepted", "")
	s.Require().NoError(err)
	s.Equal(5, s.stock("canteen-1", "4"))

	_, err = s.transition("canteen-1", v.ID, "Preparing", "")
	s.Require().NoError(err)
	ready, err := s.transition("canteen-1", v.ID, "Ready", "")
	s.Require().NoError(err)

	s.Equal("Ready", ready.Status)
	s.NotNil(ready.AcceptedAt)
	s.NotNil(ready.PreparingAt)
	s.NotNil(ready.ReadyAt)
	s.Equal(5, s.stock("canteen-1", "4"))
	s.Equal(int64(320), s.balance())
}

func (s *OrderCommandsTestSuite) TestAccept_AggregatesDuplicateLines() {
	v := s.mustPlace("canteen-1", mainSlot, item("4", 2), item("4", 3))

	_, err := s.transition("canteen-1", v.ID, "Accepted", "")
	s.Require().NoError(err)
	s.Equal(3, s.stock("canteen-1", "4"))
}

func (s *OrderCommandsTestSuite) TestAccept_StrictRefusesShortStock() {
	zero := 2
	_, err := s.inventory.SetStock(s.ctx, "canteen-3", "14", reqdto.SetStockRequest{Quantity: &zero})
	s.Require().NoError(err)
	v := s.mustPlace("canteen-3", snackSlot, item("14", 3))

	_, err = s.transition("canteen-3", v.ID, "Accepted", "")

	s.ErrorIs(err, order.ErrInsufficientStock)
	s.Equal(2, s.stock("canteen-3", "14"))
	list, err := queries.NewOrderQueries(s.env.UoW).ListByCanteen(s.ctx, "canteen-3", nil)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("New", list[0].Status)
}

func (s *OrderCommandsTestSuite) TestAccept_LenientFloorsStockAtZero() {
	s.usePolicy(order.Policy{})
	two := 2
	_, err := s.inventory.SetStock(s.ctx, "canteen-3", "14", reqdto.SetStockRequest{Quantity: &two})
	s.Require().NoError(err)
	v := s.mustPlace("canteen-3", snackSlot, item("14", 3))

	got, err := s.transition("canteen-3", v.ID, "Accepted", "")

	s.Require().NoError(err)
	s.Equal("Accepted", got.Status)
	s.Equal(0, s.stock("canteen-3", "14"))
}

func (s *OrderCommandsTestSuite) TestReject_RefundsAndKeepsSlot() {
	v := s.mustPlace("canteen-1", mainSlot, item("1", 2))

	got, err := s.transition("canteen-1", v.ID, "Rejected", "Out of biryani")
	s.Require().NoError(err)

	s.Equal("Rejected", got.Status)
	s.Equal("Out of biryani", got.RejectionReason)
	s.Equal(29, s.slotFilled("canteen-1", mainSlot))

	w, err := s.wallets.GetWallet(s.ctx, student)
	s.Require().NoError(err)
	s.Equal(int64(500), w.Balance)
	s.Equal("refund", w.Transactions[0].Kind)
	s.Equal(int64(240), w.Transactions[0].Amount)
	s.Equal("Refund for "+v.ID.String()+" - Out of biryani", w.Transactions[0].Description)
}

func (s *OrderCommandsTestSuite) TestReject_DefaultReason() {
	v := s.mustPlace("canteen-1", mainSlot, item("3", 1))

	got, err := s.transition("canteen-1", v.ID, "Rejected", "")
	s.Require().NoError(err)

	s.Equal(order.DefaultRejectionReason, got.RejectionReason)
	w, err := s.wallets.GetWallet(s.ctx, student)
	s.Require().NoError(err)
	s.Equal("Refund for "+v.ID.String()+" - Order rejected", w.Transactions[0].Description)
}

func (s *OrderCommandsTestSuite) TestReject_ReleasesSlotWhenConfigured() {
	s.usePolicy(order.Policy{StrictAccept: true, ReleaseOnReject: true})
	v := s.mustPlace("canteen-1", mainSlot, item("3", 1))
	s.Equal(29, s.slotFilled("canteen-1", mainSlot))

	_, err := s.transition("canteen-1", v.ID, "Rejected", "")
	s.Require().NoError(err)
	s.Equal(28, s.slotFilled("canteen-1", mainSlot))
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_Refusals() {
	v := s.mustPlace("canteen-1", mainSlot, item("3", 1))

	_, err := s.transition("canteen-1", v.ID, "Ready", "")
	s.ErrorIs(err, order.ErrInvalidTransition)

	_, err = s.transition("canteen-2", v.ID, "Accepted", "")
	s.True(errs.Is(err, errs.ErrOrderNotOwned))

	_, err = s.transition("canteen-1", uuid.New(), "Accepted", "")
	s.True(errs.Is(err, errs.ErrOrderNotFound))

	_, err = s.transition("canteen-1", v.ID, "Cancelled", "")
	s.True(errs.Is(err, errs.ErrDomainValidation))

	_, err = s.transition("canteen-1", v.ID, "Rejected", "")
	s.Require().NoError(err)
	_, err = s.transition("canteen-1", v.ID, "Accepted", "")
	s.ErrorIs(err, order.ErrInvalidTransition)

	s.Equal(int64(500), s.balance())
}

func TestWalletCommands_TopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the wallet", func(t *testing.T) {
		env := storetest.NewEnv(t)
		cmd := commands.NewWalletCommands(env.UoW, commands.TopUpSettings{InitialBalance: 500, MaxAmount: 5000}, shared.NopRecorder{}, env.Clock)

		w, err := cmd.TopUp(ctx, student, reqdto.TopUpRequest{Amount: 200})
		if err != nil {
			t.Fatal(err)
		}
		if w.Balance != 700 || w.Transactions[0].Description != "Added to wallet" {
			t.Fatalf("unexpected wallet %+v", w)
		}
	})

	t.Run("opens a new student's wallet first", func(t *testing.T) {
		env := storetest.NewEnv(t)
		cmd := commands.NewWalletCommands(env.UoW, commands.TopUpSettings{InitialBalance: 500, MaxAmount: 5000}, shared.NopRecorder{}, env.Clock)

		w, err := cmd.TopUp(ctx, "student-7", reqdto.TopUpRequest{Amount: 50})
		if err != nil {
			t.Fatal(err)
		}
		if w.Balance != 550 || len(w.Transactions) != 2 {
			t.Fatalf("unexpected wallet %+v", w)
		}
	})

	t.Run("rejects amounts out of range", func(t *testing.T) {
		env := storetest.NewEnv(t)
		cmd := commands.NewWalletCommands(env.UoW, commands.TopUpSettings{InitialBalance: 500, MaxAmount: 5000}, shared.NopRecorder{}, env.Clock)

		for _, amount := range []int64{0, -10, 5001} {
			if _, err := cmd.TopUp(ctx, student, reqdto.TopUpRequest{Amount: amount}); err != commands.ErrInvalidTopUpAmount {
				t.Fatalf("amount %d: got %v", amount, err)
			}
		}
	})

	t.Run("gives up when the caller leaves during the delay", func(t *testing.T) {
		env := storetest.NewEnv(t)
		cmd := commands.NewWalletCommands(env.UoW, commands.TopUpSettings{InitialBalance: 500, Delay: time.Minute, MaxAmount: 5000}, shared.NopRecorder{}, env.Clock)

		cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		if _, err := cmd.TopUp(cctx, student, reqdto.TopUpRequest{Amount: 100}); err != context.DeadlineExceeded {
			t.Fatalf("got %v", err)
		}

		w, err := queries.NewWalletQueries(env.UoW, 500, env.Clock).GetWallet(ctx, student)
		if err != nil || w.Balance != 500 {
			t.Fatalf("balance changed: %+v %v", w, err)
		}
	})
}

func TestInventoryCommands(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	cmd := commands.NewInventoryCommands(env.UoW, shared.NopRecorder{})

	negative := -4
	v, err := cmd.SetStock(ctx, "canteen-2", "9", reqdto.SetStockRequest{Quantity: &negative})
	if err != nil || v.Quantity != 0 || v.InStock {
		t.Fatalf("set stock: %+v %v", v, err)
	}

	v, err = cmd.AdjustStock(ctx, "canteen-2", "9", reqdto.AdjustStockRequest{Delta: 6})
	if err != nil || v.Quantity != 6 {
		t.Fatalf("adjust up: %+v %v", v, err)
	}

	v, err = cmd.AdjustStock(ctx, "canteen-2", "9", reqdto.AdjustStockRequest{Delta: -10})
	if err != nil || v.Quantity != 0 {
		t.Fatalf("adjust down: %+v %v", v, err)
	}

	if _, err := cmd.AdjustStock(ctx, "canteen-1", "9", reqdto.AdjustStockRequest{Delta: 1}); !errs.Is(err, errs.ErrFoodItemNotFound) {
		t.Fatalf("foreign item: %v", err)
	}
	if _, err := cmd.SetStock(ctx, "canteen-2", "9", reqdto.SetStockRequest{}); !errs.Is(err, errs.ErrDomainValidation) {
		t.Fatalf("missing quantity: %v", err)
	}
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	env := storetest.NewEnv(t)
	jwtService := jwt.NewService("test-secret", time.Hour)
	cmd := commands.NewAuthCommands(env.UoW, jwtService)

	res, err := cmd.Login(ctx, reqdto.LoginRequest{StaffID: " juice001 ", Password: "juice123 "})
	if err != nil {
		t.Fatal(err)
	}
	if res.CanteenID != "canteen-2" || res.CanteenName != "Juice Shop" {
		t.Fatalf("unexpected login %+v", res)
	}
	claims, err := jwtService.ValidateToken(res.Token)
	if err != nil || claims.CanteenID != "canteen-2" {
		t.Fatalf("token: %+v %v", claims, err)
	}

	for _, req := range []reqdto.LoginRequest{
		{StaffID: "MAIN001", Password: "juice123"},
		{StaffID: "MAIN001", Password: "MAIN123"},
		{StaffID: "NOBODY", Password: "main123"},
	} {
		if _, err := cmd.Login(ctx, req); err != commands.ErrInvalidCredentials {
			t.Fatalf("%+v: got %v", req, err)
		}
	}
}
