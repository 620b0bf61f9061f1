package wallet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStudent = errors.New("invalid student id")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

const (
	InitialBalanceDescription = "Initial balance"
	TopUpDescription          = "Added to wallet"
)

type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
	KindRefund Kind = "refund"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCredit, KindDebit, KindRefund:
		return true
	default:
		return false
	}
}

// Transaction is an append-only ledger entry.
type Transaction struct {
	id          uuid.UUID
	kind        Kind
	amount      int64
	description string
	createdAt   time.Time
}

func ReconstructTransaction(id uuid.UUID, kind Kind, amount int64, description string, createdAt time.Time) Transaction {
	return Transaction{
		id:          id,
		kind:        kind,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
	}
}

func (t Transaction) ID() uuid.UUID        { return t.id }
func (t Transaction) Kind() Kind           { return t.kind }
func (t Transaction) Amount() int64        { return t.amount }
func (t Transaction) Description() string  { return t.description }
func (t Transaction) CreatedAt() time.Time { return t.createdAt }

// Wallet holds one student's balance and ledger.
type Wallet struct {
	studentID    string
	balance      int64
	transactions []Transaction
}

// NormalizeStudentID is the key wallets and orders are stored under.
func NormalizeStudentID(studentID string) string {
	return strings.TrimSpace(studentID)
}

// Open creates a wallet seeded with an initial credit.
func Open(studentID string, initialBalance int64, now time.Time) (*Wallet, error) {
	studentID = NormalizeStudentID(studentID)
	if studentID == "" {
		return nil, ErrInvalidStudent
	}
	w := &Wallet{studentID: studentID}
	if initialBalance > 0 {
		w.Credit(initialBalance, InitialBalanceDescription, now)
	}
	return w, nil
}

func ReconstructWallet(studentID string, balance int64, transactions []Transaction) *Wallet {
	txs := make([]Transaction, len(transactions))
	copy(txs, transactions)
	return &Wallet{
		studentID:    studentID,
		balance:      balance,
		transactions: txs,
	}
}

func (w *Wallet) Credit(amount int64, description string, now time.Time) Transaction {
	return w.append(KindCredit, amount, description, now)
}

// Debit does not reject a negative result; callers check CanAfford first.
func (w *Wallet) Debit(amount int64, description string, now time.Time) Transaction {
	return w.append(KindDebit, amount, description, now)
}

func (w *Wallet) Refund(amount int64, description string, now time.Time) Transaction {
	return w.append(KindRefund, amount, description, now)
}

func (w *Wallet) CanAfford(amount int64) bool {
	return amount <= w.balance
}

func (w *Wallet) append(kind Kind, amount int64, description string, now time.Time) Transaction {
	tx := Transaction{
		id:          uuid.Must(uuid.NewV7()),
		kind:        kind,
		amount:      amount,
		description: description,
		createdAt:   now,
	}
	if kind == KindDebit {
		w.balance -= amount
	} else {
		w.balance += amount
	}
	w.transactions = append(w.transactions, tx)
	return tx
}

func (w *Wallet) StudentID() string { return w.studentID }
func (w *Wallet) Balance() int64    { return w.balance }

// Transactions returns the ledger in append order.
func (w *Wallet) Transactions() []Transaction {
	txs := make([]Transaction, len(w.transactions))
	copy(txs, w.transactions)
	return txs
}

func (w *Wallet) TransactionsNewestFirst() []Transaction {
	txs := make([]Transaction, len(w.transactions))
	for i, tx := range w.transactions {
		txs[len(w.transactions)-1-i] = tx
	}
	return txs
}
