package service

import (
	"context"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// TrackingService exposes live GPS telemetry and the host-side kill
// switch for active trips. It reads booking status only; it never
// drives lifecycle transitions.
type TrackingService struct {
	store       redis.TrackingStoreInterface
	bookingRepo repository.BookingRepository
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(store redis.TrackingStoreInterface, bookingRepo repository.BookingRepository) *TrackingService {
	return &TrackingService{
		store:       store,
		bookingRepo: bookingRepo,
	}
}

// UpdateLocationRequest contains one GPS fix reported by the tracker.
type UpdateLocationRequest struct {
	BookingID  string
	Lat        float64
	Lng        float64
	SpeedKPH   float64
	Heading    float64
	IgnitionOn bool
}

// UpdateLocation records the latest fix for an active booking.
func (s *TrackingService) UpdateLocation(ctx context.Context, req UpdateLocationRequest) error {
	if req.BookingID == "" {
		return ErrInvalidBookingID
	}

	if err := s.requireActive(ctx, req.BookingID); err != nil {
		return err
	}

	return s.store.SetTelemetry(ctx, req.BookingID, &redis.Telemetry{
		Lat:        req.Lat,
		Lng:        req.Lng,
		SpeedKPH:   req.SpeedKPH,
		Heading:    req.Heading,
		IgnitionOn: req.IgnitionOn,
		RecordedAt: time.Now(),
	})
}

// LocationStatus is the tracker view of an active trip.
type LocationStatus struct {
	Telemetry  *redis.Telemetry
	KillSwitch bool
}

// GetLocation retrieves the latest fix and kill-switch state for an
// active booking. Telemetry is nil when no recent fix exists.
func (s *TrackingService) GetLocation(ctx context.Context, bookingID string) (*LocationStatus, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if err := s.requireActive(ctx, bookingID); err != nil {
		return nil, err
	}

	telemetry, err := s.store.GetTelemetry(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	killSwitch, err := s.store.GetKillSwitch(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &LocationStatus{
		Telemetry:  telemetry,
		KillSwitch: killSwitch,
	}, nil
}

// SetKillSwitch flips the remote engine-disable flag for an active
// booking.
func (s *TrackingService) SetKillSwitch(ctx context.Context, bookingID string, on bool) error {
	if bookingID == "" {
		return ErrInvalidBookingID
	}

	if err := s.requireActive(ctx, bookingID); err != nil {
		return err
	}

	return s.store.SetKillSwitch(ctx, bookingID, on)
}

func (s *TrackingService) requireActive(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != domain.BookingStatusActive {
		return ErrBookingNotActive
	}

	return nil
}
