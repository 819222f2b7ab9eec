package domain

import "time"

// Transmission represents a car's transmission type.
type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// FuelType represents a car's fuel type.
type FuelType string

const (
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeHybrid   FuelType = "Hybrid"
	FuelTypeElectric FuelType = "Electric"
)

// Location is the pickup location of a car.
type Location struct {
	Address string
	Lat     float64
	Lng     float64
}

// Availability describes when a car can be booked.
// DaysOfWeek uses time.Weekday numbering (0 = Sunday).
// StartTime and EndTime are "HH:MM" clock strings.
type Availability struct {
	DaysOfWeek  []int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// Car represents a host-owned car listed for rental.
// Make, Model and PlateNumber are immutable after creation;
// deletion is a soft delete (IsActive = false) so booking
// history stays intact.
type Car struct {
	ID           string
	HostID       string
	Make         string
	Model        string
	Year         int
	Color        string
	PlateNumber  string
	PricePerHour float64
	PricePerDay  float64
	Seats        int
	Transmission Transmission
	FuelType     FuelType
	Location     Location
	Availability Availability
	Features     []string
	IsActive     bool
	CreatedAt    time.Time
}
