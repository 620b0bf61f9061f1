package repository

import (
	"context"

	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/repository/converter"
	"campus-canteen/internal/infra/state"
)

type WalletRepository struct {
	guard
	snap *state.Snapshot
}

func NewWalletRepository(snap *state.Snapshot, readOnly bool) *WalletRepository {
	return &WalletRepository{guard: guard{readOnly: readOnly}, snap: snap}
}

func (r *WalletRepository) Find(_ context.Context, studentID string) (*wallet.Wallet, error) {
	studentID = wallet.NormalizeStudentID(studentID)
	for _, rec := range r.snap.Wallets {
		if rec.StudentID == studentID {
			return converter.WalletFromRecord(rec), nil
		}
	}
	return nil, infra.NotFound("wallet not found")
}

func (r *WalletRepository) Save(_ context.Context, w *wallet.Wallet) error {
	if err := r.checkWritable("save wallet"); err != nil {
		return err
	}

	rec := converter.WalletToRecord(w)
	rec.StudentID = wallet.NormalizeStudentID(rec.StudentID)
	for i := range r.snap.Wallets {
		if r.snap.Wallets[i].StudentID == rec.StudentID {
			r.snap.Wallets[i] = rec
			return nil
		}
	}
	r.snap.Wallets = append(r.snap.Wallets, rec)
	return nil
}
