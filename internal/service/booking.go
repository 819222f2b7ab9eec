package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// BookingService owns the booking lifecycle. Status only ever moves
// along upcoming -> active -> completed, or upcoming -> cancelled; the
// verification gate and condition records guard the forward
// transitions, and completion triggers exactly one host payout.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	carRepo             repository.CarRepository
	gate                VerificationGateInterface
	conditions          ConditionCheckerInterface
	walletService       *WalletService
	notificationService *NotificationService
	locks               redis.LockStoreInterface
	lockTTL             time.Duration
}

// NewBookingService creates a new BookingService. locks and
// notificationService may be nil.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	gate VerificationGateInterface,
	conditions ConditionCheckerInterface,
	walletService *WalletService,
	notificationService *NotificationService,
	locks redis.LockStoreInterface,
	lockTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		carRepo:             carRepo,
		gate:                gate,
		conditions:          conditions,
		walletService:       walletService,
		notificationService: notificationService,
		locks:               locks,
		lockTTL:             lockTTL,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	CarID          string
	RenterID       string
	StartTime      time.Time
	EndTime        time.Time
	PickupLocation string
}

// CreateBooking creates a booking in the upcoming state. The total is
// fixed here from the car's rates and never recomputed; changing the
// interval requires cancellation and rebooking.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.CarID == "" {
		return nil, ErrInvalidCarID
	}

	if req.RenterID == "" {
		return nil, ErrInvalidRenterID
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidInterval
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}

	if !car.IsActive || !intervalWithinAvailability(car.Availability, req.StartTime, req.EndTime) {
		return nil, ErrCarUnavailable
	}

	quote := ComputeQuote(car, req.StartTime, req.EndTime)

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		CarID:          car.ID,
		HostID:         car.HostID,
		RenterID:       req.RenterID,
		Status:         domain.BookingStatusUpcoming,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TotalAmount:    quote.Total,
		PickupLocation: req.PickupLocation,
		CreatedAt:      time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingConfirmed(ctx, booking)
	}

	return booking, nil
}

// StartTripRequest contains the parameters for starting a trip.
type StartTripRequest struct {
	BookingID string
	Proof     VerificationProof
}

// StartTrip moves a booking from upcoming to active. The verification
// gate must accept the proof and a complete "before" condition record
// must exist; otherwise the booking stays upcoming.
func (s *BookingService) StartTrip(ctx context.Context, req StartTripRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.acquireLock(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, domain.BookingStatusActive) {
		return nil, ErrInvalidTransition
	}

	if err := s.gate.Verify(ctx, booking.ID, req.Proof); err != nil {
		return nil, err
	}

	complete, err := s.conditions.IsComplete(ctx, booking.ID, domain.ConditionPhaseBefore)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, ErrConditionCheckMissing
	}

	booking.Status = domain.BookingStatusActive
	booking.ActivatedAt = time.Now()

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyTripStarted(ctx, booking)
	}

	return booking, nil
}

// EndTripRequest contains the parameters for ending a trip.
type EndTripRequest struct {
	BookingID string
}

// EndTripResponse contains the result of ending a trip.
type EndTripResponse struct {
	Booking *domain.Booking
	Invoice *domain.Invoice
	Payout  *domain.WalletTransaction
}

// EndTrip moves a booking from active to completed and credits the
// host's wallet with the booking total exactly once. A complete "after"
// condition record is required; re-invoking EndTrip on a completed
// booking fails with ErrInvalidTransition rather than crediting twice.
func (s *BookingService) EndTrip(ctx context.Context, req EndTripRequest) (*EndTripResponse, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.acquireLock(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, domain.BookingStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	complete, err := s.conditions.IsComplete(ctx, booking.ID, domain.ConditionPhaseAfter)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, ErrConditionCheckMissing
	}

	booking.Status = domain.BookingStatusCompleted
	booking.CompletedAt = time.Now()

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		BookingID:   booking.ID,
		RentalFee:   booking.TotalAmount,
		DamageFee:   0,
		LateFee:     0,
		TotalPayout: booking.TotalAmount,
		IssuedAt:    booking.CompletedAt,
	}

	// Credit the host after the transition is persisted. The payout
	// reference makes the credit idempotent, so a crash between the
	// update and the credit can be repaired without double-paying.
	payout, err := s.walletService.CreditWithReference(
		ctx,
		booking.HostID,
		booking.TotalAmount,
		fmt.Sprintf("Trip earnings: %s", booking.ID),
		payoutReference(booking.ID),
	)
	if err != nil {
		log.Printf("booking %s completed but payout failed: %v", booking.ID, err)
		payout = nil
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyTripCompleted(ctx, booking)
		if payout != nil {
			_ = s.notificationService.NotifyPayoutCredited(ctx, payout)
		}
	}

	return &EndTripResponse{
		Booking: booking,
		Invoice: invoice,
		Payout:  payout,
	}, nil
}

// CancelBookingRequest contains the parameters for cancelling a booking.
type CancelBookingRequest struct {
	BookingID string
	Reason    string
}

// CancelBooking cancels an upcoming booking. Active and terminal
// bookings cannot be cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, req CancelBookingRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.acquireLock(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(booking.Status, domain.BookingStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	booking.Status = domain.BookingStatusCancelled
	booking.CancelledAt = time.Now()
	booking.CancelReason = req.Reason

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingCancelled(ctx, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// ListUserBookings retrieves a user's bookings, as renter or as host.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string, role domain.Role) ([]*domain.Booking, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if role == domain.RoleHost {
		return s.bookingRepo.ListByHostID(ctx, userID)
	}
	return s.bookingRepo.ListByRenterID(ctx, userID)
}

// acquireLock serializes mutating transitions per booking. Returns a
// release func; when no lock store is configured it is a no-op.
func (s *BookingService) acquireLock(ctx context.Context, bookingID string) (func(), error) {
	if s.locks == nil {
		return func() {}, nil
	}

	ok, err := s.locks.AcquireBookingLock(ctx, bookingID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBookingLocked
	}

	return func() {
		_ = s.locks.ReleaseBookingLock(ctx, bookingID)
	}, nil
}

func payoutReference(bookingID string) string {
	return "payout:" + bookingID
}

// intervalWithinAvailability reports whether a requested interval fits
// the car's availability window: the availability flag must be set,
// every weekday the interval touches must be in DaysOfWeek, and a
// same-day interval must fall inside the [StartTime, EndTime] clock
// window. Multi-day rentals span nights, so the clock check only
// applies to same-day intervals.
func intervalWithinAvailability(av domain.Availability, start, end time.Time) bool {
	if !av.IsAvailable {
		return false
	}

	if len(av.DaysOfWeek) > 0 {
		days := make(map[int]bool, len(av.DaysOfWeek))
		for _, d := range av.DaysOfWeek {
			days[d] = true
		}

		lastDay := startOfDay(end)
		if end.Equal(lastDay) {
			// An interval ending exactly at midnight does not touch that day.
			lastDay = lastDay.AddDate(0, 0, -1)
		}
		for d := startOfDay(start); !d.After(lastDay); d = d.AddDate(0, 0, 1) {
			if !days[int(d.Weekday())] {
				return false
			}
		}
	}

	sameDay := startOfDay(start).Equal(startOfDay(end.Add(-time.Nanosecond)))
	if sameDay && av.StartTime != "" && av.EndTime != "" {
		// Zero-padded "HH:MM" strings order correctly as strings.
		if start.Format("15:04") < av.StartTime || end.Format("15:04") > av.EndTime {
			return false
		}
	}

	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
