package domain

import "time"

// TransactionType represents the direction of a wallet transaction.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// TransactionStatus represents the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
)

// WalletTransaction is one entry in an account's append-only ledger.
// Entries are never mutated or deleted; corrections are issued as
// compensating entries. Reference, when set, makes creation idempotent
// (one entry per reference, used for booking payouts).
type WalletTransaction struct {
	ID          string
	AccountID   string
	Type        TransactionType
	Amount      float64
	Description string
	Reference   string
	Status      TransactionStatus
	Date        time.Time
}
