package response

import (
	"time"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type WalletResponse struct {
	StudentID    string                `json:"studentId"`
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}
