package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// FleetService owns car records, availability windows and pricing.
type FleetService struct {
	carRepo repository.CarRepository
	cache   redis.CacheStoreInterface
}

// NewFleetService creates a new FleetService. cache may be nil.
func NewFleetService(carRepo repository.CarRepository, cache redis.CacheStoreInterface) *FleetService {
	return &FleetService{
		carRepo: carRepo,
		cache:   cache,
	}
}

// AddCarRequest contains the parameters for listing a new car.
type AddCarRequest struct {
	HostID       string
	Make         string
	Model        string
	Year         int
	Color        string
	PlateNumber  string
	PricePerHour float64
	PricePerDay  float64
	Seats        int
	Transmission domain.Transmission
	FuelType     domain.FuelType
	Location     domain.Location
	Availability domain.Availability
	Features     []string
}

// AddCar validates and persists a new car listing.
func (s *FleetService) AddCar(ctx context.Context, req AddCarRequest) (*domain.Car, error) {
	if req.HostID == "" {
		return nil, ErrInvalidHostID
	}

	if req.Make == "" || req.Model == "" || req.PlateNumber == "" {
		return nil, ErrMissingCarField
	}

	if req.PricePerHour <= 0 || req.PricePerDay <= 0 {
		return nil, ErrInvalidPrice
	}

	car := &domain.Car{
		ID:           uuid.New().String(),
		HostID:       req.HostID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		PlateNumber:  req.PlateNumber,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Seats:        req.Seats,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Location:     req.Location,
		Availability: req.Availability,
		Features:     req.Features,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

// UpdateCarRequest contains a partial car update. Nil fields are left
// unchanged. Make, Model and PlateNumber may be echoed back unchanged
// but any attempt to alter them is rejected.
type UpdateCarRequest struct {
	CarID        string
	Make         *string
	Model        *string
	PlateNumber  *string
	Color        *string
	PricePerHour *float64
	PricePerDay  *float64
	Features     []string
	Availability *domain.Availability
}

// UpdateCar applies a partial update to a car. Structural fields are
// immutable after creation; only pricing, color, features and the
// availability window may change.
func (s *FleetService) UpdateCar(ctx context.Context, req UpdateCarRequest) (*domain.Car, error) {
	if req.CarID == "" {
		return nil, ErrInvalidCarID
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}

	if req.Make != nil && *req.Make != car.Make {
		return nil, ErrImmutableField
	}
	if req.Model != nil && *req.Model != car.Model {
		return nil, ErrImmutableField
	}
	if req.PlateNumber != nil && *req.PlateNumber != car.PlateNumber {
		return nil, ErrImmutableField
	}

	if req.Color != nil {
		car.Color = *req.Color
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		car.PricePerHour = *req.PricePerHour
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay <= 0 {
			return nil, ErrInvalidPrice
		}
		car.PricePerDay = *req.PricePerDay
	}
	if req.Features != nil {
		car.Features = req.Features
	}
	if req.Availability != nil {
		car.Availability = *req.Availability
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	s.invalidate(ctx, car.ID)

	return car, nil
}

// DeleteCar soft-deletes a car. Bookings referencing the car are kept.
func (s *FleetService) DeleteCar(ctx context.Context, carID string) error {
	if carID == "" {
		return ErrInvalidCarID
	}

	if err := s.carRepo.SetActive(ctx, carID, false); err != nil {
		return err
	}

	s.invalidate(ctx, carID)

	return nil
}

// ToggleAvailability flips a car's availability flag.
func (s *FleetService) ToggleAvailability(ctx context.Context, carID string) (*domain.Car, error) {
	if carID == "" {
		return nil, ErrInvalidCarID
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	car.Availability.IsAvailable = !car.Availability.IsAvailable

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	s.invalidate(ctx, car.ID)

	return car, nil
}

// GetCar retrieves a car by ID, serving from cache when possible.
func (s *FleetService) GetCar(ctx context.Context, carID string) (*domain.Car, error) {
	if carID == "" {
		return nil, ErrInvalidCarID
	}

	if s.cache != nil {
		cached, err := s.cache.GetCar(ctx, carID)
		if err == nil && cached != nil {
			return carFromCache(cached), nil
		}
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetCar(ctx, carToCache(car))
	}

	return car, nil
}

// ListAvailableCars retrieves active, available cars matching the filter.
func (s *FleetService) ListAvailableCars(ctx context.Context, filter repository.CarFilter) ([]*domain.Car, error) {
	return s.carRepo.ListAvailable(ctx, filter)
}

// ListHostCars retrieves every car owned by a host, including inactive ones.
func (s *FleetService) ListHostCars(ctx context.Context, hostID string) ([]*domain.Car, error) {
	if hostID == "" {
		return nil, ErrInvalidHostID
	}

	return s.carRepo.GetByHostID(ctx, hostID)
}

func (s *FleetService) invalidate(ctx context.Context, carID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateCar(ctx, carID)
	}
}

func carToCache(car *domain.Car) *redis.CachedCar {
	return &redis.CachedCar{
		ID:           car.ID,
		HostID:       car.HostID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		Color:        car.Color,
		PlateNumber:  car.PlateNumber,
		PricePerHour: car.PricePerHour,
		PricePerDay:  car.PricePerDay,
		Seats:        car.Seats,
		Transmission: string(car.Transmission),
		FuelType:     string(car.FuelType),
		Address:      car.Location.Address,
		Lat:          car.Location.Lat,
		Lng:          car.Location.Lng,
		DaysOfWeek:   car.Availability.DaysOfWeek,
		StartTime:    car.Availability.StartTime,
		EndTime:      car.Availability.EndTime,
		IsAvailable:  car.Availability.IsAvailable,
		Features:     car.Features,
		IsActive:     car.IsActive,
	}
}

func carFromCache(cached *redis.CachedCar) *domain.Car {
	return &domain.Car{
		ID:           cached.ID,
		HostID:       cached.HostID,
		Make:         cached.Make,
		Model:        cached.Model,
		Year:         cached.Year,
		Color:        cached.Color,
		PlateNumber:  cached.PlateNumber,
		PricePerHour: cached.PricePerHour,
		PricePerDay:  cached.PricePerDay,
		Seats:        cached.Seats,
		Transmission: domain.Transmission(cached.Transmission),
		FuelType:     domain.FuelType(cached.FuelType),
		Location: domain.Location{
			Address: cached.Address,
			Lat:     cached.Lat,
			Lng:     cached.Lng,
		},
		Availability: domain.Availability{
			DaysOfWeek:  cached.DaysOfWeek,
			StartTime:   cached.StartTime,
			EndTime:     cached.EndTime,
			IsAvailable: cached.IsAvailable,
		},
		Features: cached.Features,
		IsActive: cached.IsActive,
	}
}
