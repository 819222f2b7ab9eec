package repository

import (
	"context"

	"swiftride/internal/domain"
)

// ConditionRepository defines the persistence operations for condition records.
type ConditionRepository interface {
	// Upsert stores a condition record, overwriting any existing record
	// for the same (bookingID, phase) pair.
	Upsert(ctx context.Context, record *domain.ConditionRecord) error

	// Get retrieves the record for a booking and phase.
	Get(ctx context.Context, bookingID string, phase domain.ConditionPhase) (*domain.ConditionRecord, error)
}
