package commands

import (
	"context"
	"log/slog"
	"time"

	"campus-canteen/internal/domain/wallet"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/internal/usecase/shared"
)

var ErrInvalidTopUpAmount = errs.New("invalid top-up amount")

type WalletCommands interface {
	TopUp(ctx context.Context, studentID string, req reqdto.TopUpRequest) (*queries.WalletView, error)
}

type TopUpSettings struct {
	InitialBalance int64
	Delay          time.Duration
	MaxAmount      int64
}

type walletCommandsImpl struct {
	uow      shared.UnitOfWork
	settings TopUpSettings
	recorder shared.EventRecorder
	clock    clock.Clock
}

func NewWalletCommands(uow shared.UnitOfWork, settings TopUpSettings, recorder shared.EventRecorder, clock clock.Clock) WalletCommands {
	return &walletCommandsImpl{
		uow:      uow,
		settings: settings,
		recorder: recorder,
		clock:    clock,
	}
}

// TopUp waits out the simulated payment latency without holding the store, then credits the wallet.
func (c *walletCommandsImpl) TopUp(ctx context.Context, studentID string, req reqdto.TopUpRequest) (*queries.WalletView, error) {
	if req.Amount <= 0 || (c.settings.MaxAmount > 0 && req.Amount > c.settings.MaxAmount) {
		return nil, ErrInvalidTopUpAmount
	}

	if c.settings.Delay > 0 {
		timer := time.NewTimer(c.settings.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	studentID = wallet.NormalizeStudentID(studentID)
	var view *queries.WalletView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		w, err := shared.FindOrOpenWallet(ctx, tx, studentID, c.settings.InitialBalance, now)
		if err != nil {
			return err
		}
		w.Credit(req.Amount, wallet.TopUpDescription, now)
		if err := tx.Wallets().Save(ctx, w); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		view = queries.NewWalletView(w)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recorder.WalletCredited(wallet.KindCredit.String(), req.Amount)
	slog.Info("wallet topped up", "student_id", studentID, "amount", req.Amount, "balance", view.Balance)
	return view, nil
}
