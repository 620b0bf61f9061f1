package converter

import (
	"campus-canteen/internal/domain/wallet"
	"campus-canteen/internal/infra/state"
)

func WalletToRecord(w *wallet.Wallet) state.WalletRecord {
	txs := w.Transactions()
	records := make([]state.TransactionRecord, len(txs))
	for i, t := range txs {
		records[i] = state.TransactionRecord{
			ID:          t.ID(),
			Type:        t.Kind().String(),
			Amount:      t.Amount(),
			Description: t.Description(),
			CreatedAt:   t.CreatedAt(),
		}
	}

	return state.WalletRecord{
		StudentID:    w.StudentID(),
		Balance:      w.Balance(),
		Transactions: records,
	}
}

func WalletFromRecord(r state.WalletRecord) *wallet.Wallet {
	txs := make([]wallet.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txs[i] = wallet.ReconstructTransaction(t.ID, wallet.Kind(t.Type), t.Amount, t.Description, t.CreatedAt)
	}
	return wallet.ReconstructWallet(r.StudentID, r.Balance, txs)
}
