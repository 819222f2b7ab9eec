package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `
	id, car_id, host_id, renter_id, status, start_time, end_time,
	total_amount, pickup_location, created_at, activated_at, completed_at,
	cancelled_at, cancel_reason
`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.CarID,
		booking.HostID,
		booking.RenterID,
		booking.Status,
		booking.StartTime,
		booking.EndTime,
		booking.TotalAmount,
		booking.PickupLocation,
		booking.CreatedAt,
		nullTime(booking.ActivatedAt),
		nullTime(booking.CompletedAt),
		nullTime(booking.CancelledAt),
		booking.CancelReason,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return booking, nil
}

// Update updates an existing booking. TotalAmount is intentionally not
// part of the SET list: it is immutable once the booking exists.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, activated_at = $2, completed_at = $3,
		    cancelled_at = $4, cancel_reason = $5
		WHERE id = $6
	`

	result, err := r.q.ExecContext(ctx, query,
		booking.Status,
		nullTime(booking.ActivatedAt),
		nullTime(booking.CompletedAt),
		nullTime(booking.CancelledAt),
		booking.CancelReason,
		booking.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListByRenterID retrieves bookings made by a renter, newest first.
func (r *BookingRepository) ListByRenterID(ctx context.Context, renterID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, renterID)
}

// ListByHostID retrieves bookings against a host's cars, newest first.
func (r *BookingRepository) ListByHostID(ctx context.Context, hostID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE host_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, hostID)
}

func (r *BookingRepository) list(ctx context.Context, query string, arg any) ([]*domain.Booking, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var activatedAt, completedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CarID,
		&booking.HostID,
		&booking.RenterID,
		&booking.Status,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalAmount,
		&booking.PickupLocation,
		&booking.CreatedAt,
		&activatedAt,
		&completedAt,
		&cancelledAt,
		&booking.CancelReason,
	)
	if err != nil {
		return nil, err
	}

	if activatedAt.Valid {
		booking.ActivatedAt = activatedAt.Time
	}
	if completedAt.Valid {
		booking.CompletedAt = completedAt.Time
	}
	if cancelledAt.Valid {
		booking.CancelledAt = cancelledAt.Time
	}

	return &booking, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// Ensure BookingRepository implements repository.BookingRepository.
var _ repository.BookingRepository = (*BookingRepository)(nil)
