package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// WalletService maintains the append-only wallet ledger. Entries are
// never mutated; corrections are issued as compensating entries.
type WalletService struct {
	walletRepo     repository.WalletRepository
	allowOverdraft bool
}

// NewWalletService creates a new WalletService. When allowOverdraft is
// false, debits that would take the balance below zero are rejected.
func NewWalletService(walletRepo repository.WalletRepository, allowOverdraft bool) *WalletService {
	return &WalletService{
		walletRepo:     walletRepo,
		allowOverdraft: allowOverdraft,
	}
}

// Credit appends a credit entry to an account's ledger.
func (s *WalletService) Credit(ctx context.Context, accountID string, amount float64, description string) (*domain.WalletTransaction, error) {
	return s.CreditWithReference(ctx, accountID, amount, description, "")
}

// CreditWithReference appends a credit entry carrying an idempotency
// reference. If an entry with the same reference already exists it is
// returned unchanged, so retried payouts never credit twice.
func (s *WalletService) CreditWithReference(ctx context.Context, accountID string, amount float64, description, reference string) (*domain.WalletTransaction, error) {
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if reference != "" {
		existing, err := s.walletRepo.GetByReference(ctx, reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	txn := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Type:        domain.TransactionTypeCredit,
		Amount:      amount,
		Description: description,
		Reference:   reference,
		Status:      domain.TransactionStatusCompleted,
		Date:        time.Now(),
	}

	if err := s.walletRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// Debit appends a debit entry to an account's ledger.
func (s *WalletService) Debit(ctx context.Context, accountID string, amount float64, description string) (*domain.WalletTransaction, error) {
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if !s.allowOverdraft {
		balance, err := s.walletRepo.GetBalance(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if balance < amount {
			return nil, ErrInsufficientBalance
		}
	}

	txn := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Type:        domain.TransactionTypeDebit,
		Amount:      amount,
		Description: description,
		Status:      domain.TransactionStatusCompleted,
		Date:        time.Now(),
	}

	if err := s.walletRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetBalance folds an account's ledger into its current balance.
func (s *WalletService) GetBalance(ctx context.Context, accountID string) (float64, error) {
	if accountID == "" {
		return 0, ErrInvalidAccountID
	}

	return s.walletRepo.GetBalance(ctx, accountID)
}

// GetHistory retrieves an account's transactions, newest first.
func (s *WalletService) GetHistory(ctx context.Context, accountID string) ([]*domain.WalletTransaction, error) {
	if accountID == "" {
		return nil, ErrInvalidAccountID
	}

	return s.walletRepo.ListByAccountID(ctx, accountID)
}
