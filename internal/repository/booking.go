package repository

import (
	"context"

	"swiftride/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// Update updates an existing booking.
	Update(ctx context.Context, booking *domain.Booking) error

	// ListByRenterID retrieves bookings made by a renter, newest first.
	ListByRenterID(ctx context.Context, renterID string) ([]*domain.Booking, error)

	// ListByHostID retrieves bookings against a host's cars, newest first.
	ListByHostID(ctx context.Context, hostID string) ([]*domain.Booking, error)
}
