package repository

import (
	"context"

	"swiftride/internal/domain"
)

// CarFilter narrows a car listing query. Nil fields are ignored.
type CarFilter struct {
	MinPricePerHour *float64
	MaxPricePerHour *float64
	Transmission    domain.Transmission
	FuelType        domain.FuelType
}

// CarRepository defines the persistence operations for cars.
type CarRepository interface {
	// Create persists a new car.
	Create(ctx context.Context, car *domain.Car) error

	// GetByID retrieves a car by ID regardless of its active flag.
	GetByID(ctx context.Context, id string) (*domain.Car, error)

	// GetByHostID retrieves all cars owned by a host.
	GetByHostID(ctx context.Context, hostID string) ([]*domain.Car, error)

	// ListAvailable retrieves active cars whose availability flag is set,
	// narrowed by the filter.
	ListAvailable(ctx context.Context, filter CarFilter) ([]*domain.Car, error)

	// Update updates an existing car.
	Update(ctx context.Context, car *domain.Car) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id string, active bool) error
}
