package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// UserService owns registration and the KYC review flow.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUserRequest contains the parameters for registering a user.
type RegisterUserRequest struct {
	Name  string
	Email string
	Phone string
	Role  domain.Role
}

// RegisterUser creates a new user with a pending KYC status.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrInvalidUserID
	}

	switch req.Role {
	case domain.RoleRenter, domain.RoleHost, domain.RoleBoth:
	default:
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		KYCStatus: domain.KYCStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SubmitKYC accepts a user's identity documents and resets the review
// state to pending. All three documents are required.
func (s *UserService) SubmitKYC(ctx context.Context, userID string, docs domain.KYCDocuments) (*domain.User, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if docs.CNICFront == "" || docs.CNICBack == "" || docs.Selfie == "" {
		return nil, ErrMissingKYCDocument
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateKYCStatus(ctx, userID, domain.KYCStatusPending); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// ReviewKYC records the outcome of a KYC review. Only approved and
// rejected are valid outcomes.
func (s *UserService) ReviewKYC(ctx context.Context, userID string, status domain.KYCStatus) (*domain.User, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if status != domain.KYCStatusApproved && status != domain.KYCStatusRejected {
		return nil, ErrInvalidKYCStatus
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateKYCStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
