package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// ConditionRepository is a PostgreSQL implementation of repository.ConditionRepository.
type ConditionRepository struct {
	q Querier
}

// NewConditionRepository creates a new PostgreSQL condition repository.
func NewConditionRepository(db *sql.DB) *ConditionRepository {
	return &ConditionRepository{q: db}
}

// Upsert stores a condition record, overwriting any existing record for
// the same (bookingID, phase) pair.
func (r *ConditionRepository) Upsert(ctx context.Context, record *domain.ConditionRecord) error {
	query := `
		INSERT INTO condition_records (booking_id, phase, photo_front, photo_back, photo_left, photo_right, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (booking_id, phase) DO UPDATE
		SET photo_front = EXCLUDED.photo_front,
		    photo_back = EXCLUDED.photo_back,
		    photo_left = EXCLUDED.photo_left,
		    photo_right = EXCLUDED.photo_right,
		    completed_at = EXCLUDED.completed_at
	`

	_, err := r.q.ExecContext(ctx, query,
		record.BookingID,
		record.Phase,
		record.Photos.Front,
		record.Photos.Back,
		record.Photos.Left,
		record.Photos.Right,
		record.CompletedAt,
	)

	return err
}

// Get retrieves the record for a booking and phase.
func (r *ConditionRepository) Get(ctx context.Context, bookingID string, phase domain.ConditionPhase) (*domain.ConditionRecord, error) {
	query := `
		SELECT booking_id, phase, photo_front, photo_back, photo_left, photo_right, completed_at
		FROM condition_records WHERE booking_id = $1 AND phase = $2
	`

	var record domain.ConditionRecord
	err := r.q.QueryRowContext(ctx, query, bookingID, phase).Scan(
		&record.BookingID,
		&record.Phase,
		&record.Photos.Front,
		&record.Photos.Back,
		&record.Photos.Left,
		&record.Photos.Right,
		&record.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &record, nil
}

// Ensure ConditionRepository implements repository.ConditionRepository.
var _ repository.ConditionRepository = (*ConditionRepository)(nil)
