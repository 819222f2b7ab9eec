package service

import (
	"context"
	"errors"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// ConditionCheckerInterface is the completeness check the booking state
// machine gates its transitions on.
type ConditionCheckerInterface interface {
	IsComplete(ctx context.Context, bookingID string, phase domain.ConditionPhase) (bool, error)
}

// ConditionService records pre- and post-trip photographic documentation.
type ConditionService struct {
	conditionRepo repository.ConditionRepository
}

// NewConditionService creates a new ConditionService.
func NewConditionService(conditionRepo repository.ConditionRepository) *ConditionService {
	return &ConditionService{conditionRepo: conditionRepo}
}

// RecordConditionRequest contains the parameters for recording a
// condition check.
type RecordConditionRequest struct {
	BookingID string
	Phase     domain.ConditionPhase
	Photos    domain.PhotoSet
}

// RecordCondition stores the photo set for one phase of a booking.
// Recording is idempotent per (booking, phase): a second call overwrites
// the previous record rather than duplicating it.
func (s *ConditionService) RecordCondition(ctx context.Context, req RecordConditionRequest) (*domain.ConditionRecord, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if req.Phase != domain.ConditionPhaseBefore && req.Phase != domain.ConditionPhaseAfter {
		return nil, ErrInvalidPhase
	}

	record := &domain.ConditionRecord{
		BookingID:   req.BookingID,
		Phase:       req.Phase,
		Photos:      req.Photos,
		CompletedAt: time.Now(),
	}

	if !record.Complete() {
		return nil, ErrIncompletePhotoSet
	}

	if err := s.conditionRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetCondition retrieves the record for a booking and phase.
func (s *ConditionService) GetCondition(ctx context.Context, bookingID string, phase domain.ConditionPhase) (*domain.ConditionRecord, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.conditionRepo.Get(ctx, bookingID, phase)
}

// IsComplete reports whether a complete record exists for the booking
// and phase.
func (s *ConditionService) IsComplete(ctx context.Context, bookingID string, phase domain.ConditionPhase) (bool, error) {
	record, err := s.conditionRepo.Get(ctx, bookingID, phase)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return record.Complete(), nil
}

// Ensure ConditionService implements ConditionCheckerInterface.
var _ ConditionCheckerInterface = (*ConditionService)(nil)
