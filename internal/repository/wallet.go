package repository

import (
	"context"

	"swiftride/internal/domain"
)

// WalletRepository defines the persistence operations for the wallet ledger.
// The ledger is append-only: there are no update or delete operations.
type WalletRepository interface {
	// Create appends a new transaction to the ledger.
	Create(ctx context.Context, txn *domain.WalletTransaction) error

	// GetByReference retrieves a transaction by its idempotency reference.
	// Returns nil if no transaction carries the given reference.
	GetByReference(ctx context.Context, reference string) (*domain.WalletTransaction, error)

	// ListByAccountID retrieves an account's transactions, newest first.
	ListByAccountID(ctx context.Context, accountID string) ([]*domain.WalletTransaction, error)

	// GetBalance folds an account's ledger into its current balance.
	GetBalance(ctx context.Context, accountID string) (float64, error)
}
