package shared

import (
	"context"
	"time"

	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/pkg/errs"
)

// FindOrOpenWallet returns the student's wallet, opening it with the initial balance on first use.
// The opened wallet is not saved; the caller saves it with its own changes.
func FindOrOpenWallet(ctx context.Context, tx Tx, studentID string, initialBalance int64, now time.Time) (*wallet.Wallet, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	w, err := tx.Wallets().Find(ctx, studentID)
	if err == nil {
		return w, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	w, err = wallet.Open(studentID, initialBalance, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return w, nil
}
