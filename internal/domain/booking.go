package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a renter's reservation of a car.
// TotalAmount is fixed at creation time and never recomputed;
// changing the interval requires cancellation and rebooking.
type Booking struct {
	ID             string
	CarID          string
	HostID         string
	RenterID       string
	Status         BookingStatus
	StartTime      time.Time
	EndTime        time.Time
	TotalAmount    float64
	PickupLocation string
	CreatedAt      time.Time
	ActivatedAt    time.Time
	CompletedAt    time.Time
	CancelledAt    time.Time
	CancelReason   string
}

// Invoice is the final bill presented when a trip completes.
type Invoice struct {
	BookingID   string
	RentalFee   float64
	DamageFee   float64
	LateFee     float64
	TotalPayout float64
	IssuedAt    time.Time
}
