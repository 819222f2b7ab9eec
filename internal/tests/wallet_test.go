package tests

import (
	"context"
	"errors"
	"testing"

	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 3. WALLET LEDGER
// ──────────────────────────────────────────────

func TestWallet_BalanceFoldsLedger(t *testing.T) {
	t.Parallel()

	walletRepo := NewMockWalletRepository()
	walletService := service.NewWalletService(walletRepo, true)
	ctx := context.Background()

	if _, err := walletService.Credit(ctx, "acct-1", 1000, "top-up"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := walletService.Debit(ctx, "acct-1", 300, "withdrawal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := walletService.Credit(ctx, "acct-1", 50, "refund"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := walletService.GetBalance(ctx, "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 750 {
		t.Errorf("expected balance 750, got %v", balance)
	}

	history, err := walletService.GetHistory(ctx, "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("expected 3 ledger entries, got %d", len(history))
	}
}

func TestWallet_RejectsNonPositiveAmounts(t *testing.T) {
	t.Parallel()

	walletRepo := NewMockWalletRepository()
	walletService := service.NewWalletService(walletRepo, true)
	ctx := context.Background()

	for _, amount := range []float64{0, -100} {
		if _, err := walletService.Credit(ctx, "acct-1", amount, "bad"); !errors.Is(err, service.ErrInvalidAmount) {
			t.Errorf("credit %v: expected ErrInvalidAmount, got %v", amount, err)
		}
		if _, err := walletService.Debit(ctx, "acct-1", amount, "bad"); !errors.Is(err, service.ErrInvalidAmount) {
			t.Errorf("debit %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}

	if walletRepo.CountTransactions() != 0 {
		t.Errorf("expected no ledger entries, got %d", walletRepo.CountTransactions())
	}
}

func TestWallet_OverdraftRejectedWhenDisabled(t *testing.T) {
	t.Parallel()

	walletRepo := NewMockWalletRepository()
	walletService := service.NewWalletService(walletRepo, false)
	ctx := context.Background()

	if _, err := walletService.Credit(ctx, "acct-1", 100, "top-up"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := walletService.Debit(ctx, "acct-1", 200, "withdrawal")
	if !errors.Is(err, service.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	balance, err := walletService.GetBalance(ctx, "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 100 {
		t.Errorf("expected balance 100, got %v", balance)
	}
}

func TestWallet_OverdraftAllowedWhenEnabled(t *testing.T) {
	t.Parallel()

	walletRepo := NewMockWalletRepository()
	walletService := service.NewWalletService(walletRepo, true)
	ctx := context.Background()

	if _, err := walletService.Debit(ctx, "acct-1", 200, "withdrawal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := walletService.GetBalance(ctx, "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != -200 {
		t.Errorf("expected balance -200, got %v", balance)
	}
}

func TestWallet_ReferenceMakesCreditIdempotent(t *testing.T) {
	t.Parallel()

	walletRepo := NewMockWalletRepository()
	walletService := service.NewWalletService(walletRepo, true)
	ctx := context.Background()

	first, err := walletService.CreditWithReference(ctx, "host-1", 3780, "Trip earnings", "payout:booking-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := walletService.CreditWithReference(ctx, "host-1", 3780, "Trip earnings", "payout:booking-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Error("expected the retried credit to return the original entry")
	}
	if walletRepo.CountTransactions() != 1 {
		t.Errorf("expected exactly 1 ledger entry, got %d", walletRepo.CountTransactions())
	}

	balance, err := walletService.GetBalance(ctx, "host-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 3780 {
		t.Errorf("expected balance 3780, got %v", balance)
	}
}
