package tests

import (
	"context"
	"errors"
	"testing"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 6. USERS AND KYC
// ──────────────────────────────────────────────

func TestUser_RegisterStartsPendingKYC(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo)

	user, err := userService.RegisterUser(context.Background(), service.RegisterUserRequest{
		Name:  "Ayesha Khan",
		Email: "ayesha@example.com",
		Role:  domain.RoleRenter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.KYCStatus != domain.KYCStatusPending {
		t.Errorf("expected pending KYC, got %s", user.KYCStatus)
	}
}

func TestUser_RegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo)
	ctx := context.Background()

	req := service.RegisterUserRequest{
		Name:  "Ayesha Khan",
		Email: "ayesha@example.com",
		Role:  domain.RoleRenter,
	}
	if _, err := userService.RegisterUser(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := userService.RegisterUser(ctx, req)
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUser_RegisterRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	userService := service.NewUserService(NewMockUserRepository())

	_, err := userService.RegisterUser(context.Background(), service.RegisterUserRequest{
		Name:  "Ayesha Khan",
		Email: "ayesha@example.com",
		Role:  "admin",
	})
	if !errors.Is(err, service.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUser_KYCReviewFlow(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo)
	ctx := context.Background()

	user, err := userService.RegisterUser(ctx, service.RegisterUserRequest{
		Name:  "Bilal Ahmed",
		Email: "bilal@example.com",
		Role:  domain.RoleHost,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Missing selfie is rejected.
	_, err = userService.SubmitKYC(ctx, user.ID, domain.KYCDocuments{
		CNICFront: "front.jpg",
		CNICBack:  "back.jpg",
	})
	if !errors.Is(err, service.ErrMissingKYCDocument) {
		t.Fatalf("expected ErrMissingKYCDocument, got %v", err)
	}

	if _, err := userService.SubmitKYC(ctx, user.ID, domain.KYCDocuments{
		CNICFront: "front.jpg",
		CNICBack:  "back.jpg",
		Selfie:    "selfie.jpg",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pending is not a valid review outcome.
	_, err = userService.ReviewKYC(ctx, user.ID, domain.KYCStatusPending)
	if !errors.Is(err, service.ErrInvalidKYCStatus) {
		t.Fatalf("expected ErrInvalidKYCStatus, got %v", err)
	}

	approved, err := userService.ReviewKYC(ctx, user.ID, domain.KYCStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if approved.KYCStatus != domain.KYCStatusApproved {
		t.Errorf("expected approved KYC, got %s", approved.KYCStatus)
	}
}
