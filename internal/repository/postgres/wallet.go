package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// WalletRepository is a PostgreSQL implementation of repository.WalletRepository.
// The wallet_transactions table is append-only; no UPDATE or DELETE is issued.
type WalletRepository struct {
	q Querier
}

// NewWalletRepository creates a new PostgreSQL wallet repository.
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{q: db}
}

// NewWalletRepositoryWithTx creates a wallet repository using a transaction.
func NewWalletRepositoryWithTx(tx *sql.Tx) *WalletRepository {
	return &WalletRepository{q: tx}
}

// Create appends a new transaction to the ledger.
func (r *WalletRepository) Create(ctx context.Context, txn *domain.WalletTransaction) error {
	query := `
		INSERT INTO wallet_transactions (id, account_id, type, amount, description, reference, status, date)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		txn.ID,
		txn.AccountID,
		txn.Type,
		txn.Amount,
		txn.Description,
		txn.Reference,
		txn.Status,
		txn.Date,
	)

	return err
}

// GetByReference retrieves a transaction by its idempotency reference.
// Returns nil if no transaction carries the given reference.
func (r *WalletRepository) GetByReference(ctx context.Context, reference string) (*domain.WalletTransaction, error) {
	query := `
		SELECT id, account_id, type, amount, description, COALESCE(reference, ''), status, date
		FROM wallet_transactions WHERE reference = $1
	`

	txn, err := scanWalletTransaction(r.q.QueryRowContext(ctx, query, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return txn, nil
}

// ListByAccountID retrieves an account's transactions, newest first.
func (r *WalletRepository) ListByAccountID(ctx context.Context, accountID string) ([]*domain.WalletTransaction, error) {
	query := `
		SELECT id, account_id, type, amount, description, COALESCE(reference, ''), status, date
		FROM wallet_transactions WHERE account_id = $1 ORDER BY date DESC
	`

	rows, err := r.q.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*domain.WalletTransaction
	for rows.Next() {
		txn, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// GetBalance folds an account's ledger into its current balance.
func (r *WalletRepository) GetBalance(ctx context.Context, accountID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = $1 THEN amount ELSE -amount END), 0)
		FROM wallet_transactions WHERE account_id = $2
	`

	var balance float64
	err := r.q.QueryRowContext(ctx, query, domain.TransactionTypeCredit, accountID).Scan(&balance)
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func scanWalletTransaction(row rowScanner) (*domain.WalletTransaction, error) {
	var txn domain.WalletTransaction
	err := row.Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.Type,
		&txn.Amount,
		&txn.Description,
		&txn.Reference,
		&txn.Status,
		&txn.Date,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Ensure WalletRepository implements repository.WalletRepository.
var _ repository.WalletRepository = (*WalletRepository)(nil)
