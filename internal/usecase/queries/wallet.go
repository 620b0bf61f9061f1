package queries

import (
	"context"

	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/usecase/shared"
)

type WalletQueries interface {
	GetWallet(ctx context.Context, studentID string) (*WalletView, error)
}

type walletQueriesImpl struct {
	uow            shared.UnitOfWork
	initialBalance int64
	clock          clock.Clock
}

func NewWalletQueries(uow shared.UnitOfWork, initialBalance int64, clock clock.Clock) WalletQueries {
	return &walletQueriesImpl{
		uow:            uow,
		initialBalance: initialBalance,
		clock:          clock,
	}
}

// GetWallet returns balance and transactions newest first. A student's first visit opens the wallet.
func (q *walletQueriesImpl) GetWallet(ctx context.Context, studentID string) (*WalletView, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	var view *WalletView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		w, err := tx.Wallets().Find(ctx, studentID)
		if err != nil {
			return err
		}
		view = NewWalletView(w)
		return nil
	})
	if err == nil {
		return view, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		w, err := shared.FindOrOpenWallet(ctx, tx, studentID, q.initialBalance, q.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Wallets().Save(ctx, w); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		view = NewWalletView(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
