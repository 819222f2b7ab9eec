package tests

import (
	"context"
	"errors"
	"testing"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 4. FLEET REGISTRY
// ──────────────────────────────────────────────

func validAddCarRequest() service.AddCarRequest {
	return service.AddCarRequest{
		HostID:       "host-1",
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Color:        "white",
		PlateNumber:  "ABC-123",
		PricePerHour: 500,
		PricePerDay:  3000,
		Seats:        5,
		Transmission: domain.TransmissionAutomatic,
		FuelType:     domain.FuelTypePetrol,
		Availability: domain.Availability{IsAvailable: true},
	}
}

func TestFleet_AddCarStartsActive(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)

	car, err := fleet.AddCar(context.Background(), validAddCarRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if car.ID == "" {
		t.Error("expected a generated car ID")
	}
	if !car.IsActive {
		t.Error("expected new listings to be active")
	}
}

func TestFleet_AddCarValidation(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	missingMake := validAddCarRequest()
	missingMake.Make = ""
	if _, err := fleet.AddCar(ctx, missingMake); !errors.Is(err, service.ErrMissingCarField) {
		t.Errorf("expected ErrMissingCarField, got %v", err)
	}

	badPrice := validAddCarRequest()
	badPrice.PricePerHour = 0
	if _, err := fleet.AddCar(ctx, badPrice); !errors.Is(err, service.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	noHost := validAddCarRequest()
	noHost.HostID = ""
	if _, err := fleet.AddCar(ctx, noHost); !errors.Is(err, service.ErrInvalidHostID) {
		t.Errorf("expected ErrInvalidHostID, got %v", err)
	}
}

func TestFleet_StructuralFieldsAreImmutable(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	car, err := fleet.AddCar(ctx, validAddCarRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newPlate := "XYZ-999"
	_, err = fleet.UpdateCar(ctx, service.UpdateCarRequest{
		CarID:       car.ID,
		PlateNumber: &newPlate,
	})
	if !errors.Is(err, service.ErrImmutableField) {
		t.Fatalf("expected ErrImmutableField, got %v", err)
	}

	// Echoing the current value back is not a change.
	samePlate := car.PlateNumber
	if _, err := fleet.UpdateCar(ctx, service.UpdateCarRequest{
		CarID:       car.ID,
		PlateNumber: &samePlate,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFleet_PriceUpdatePersists(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	car, err := fleet.AddCar(ctx, validAddCarRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newRate := 600.0
	updated, err := fleet.UpdateCar(ctx, service.UpdateCarRequest{
		CarID:        car.ID,
		PricePerHour: &newRate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PricePerHour != 600 {
		t.Errorf("expected hourly rate 600, got %v", updated.PricePerHour)
	}

	stored := carRepo.GetCar(car.ID)
	if stored.PricePerHour != 600 {
		t.Errorf("expected stored hourly rate 600, got %v", stored.PricePerHour)
	}
}

func TestFleet_DeleteIsSoft(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	car, err := fleet.AddCar(ctx, validAddCarRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := fleet.DeleteCar(ctx, car.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The record survives, flagged inactive.
	stored, err := fleet.GetCar(ctx, car.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.IsActive {
		t.Error("expected the car to be inactive after delete")
	}

	// And it no longer shows up in listings.
	listed, err := fleet.ListAvailableCars(ctx, repository.CarFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected no available cars, got %d", len(listed))
	}
}

func TestFleet_ToggleAvailability(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	car, err := fleet.AddCar(ctx, validAddCarRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := fleet.ToggleAvailability(ctx, car.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Availability.IsAvailable {
		t.Error("expected availability to flip off")
	}

	toggled, err = fleet.ToggleAvailability(ctx, car.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Availability.IsAvailable {
		t.Error("expected availability to flip back on")
	}
}

func TestFleet_ListAvailableAppliesFilters(t *testing.T) {
	t.Parallel()

	carRepo := NewMockCarRepository()
	fleet := service.NewFleetService(carRepo, nil)
	ctx := context.Background()

	cheap := validAddCarRequest()
	cheap.PlateNumber = "CHEAP-1"
	cheap.PricePerHour = 200
	if _, err := fleet.AddCar(ctx, cheap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pricey := validAddCarRequest()
	pricey.PlateNumber = "PRICEY-1"
	pricey.PricePerHour = 900
	pricey.Transmission = domain.TransmissionManual
	if _, err := fleet.AddCar(ctx, pricey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxPrice := 500.0
	filter := repository.CarFilter{MaxPricePerHour: &maxPrice}

	cars, err := fleet.ListAvailableCars(ctx, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 1 || cars[0].PlateNumber != "CHEAP-1" {
		t.Errorf("expected only the cheap car, got %d cars", len(cars))
	}

	manualOnly := repository.CarFilter{Transmission: domain.TransmissionManual}

	cars, err = fleet.ListAvailableCars(ctx, manualOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 1 || cars[0].PlateNumber != "PRICEY-1" {
		t.Errorf("expected only the manual car, got %d cars", len(cars))
	}
}
