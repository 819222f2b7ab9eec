package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 2. BOOKING LIFECYCLE
// ──────────────────────────────────────────────

type bookingFixture struct {
	service     *service.BookingService
	bookingRepo *MockBookingRepository
	carRepo     *MockCarRepository
	walletRepo  *MockWalletRepository
	conditions  *MockConditionRepository
	locks       *MockLockStore
}

func newBookingFixture() *bookingFixture {
	bookingRepo := NewMockBookingRepository()
	carRepo := NewMockCarRepository()
	walletRepo := NewMockWalletRepository()
	conditionRepo := NewMockConditionRepository()
	locks := NewMockLockStore()

	walletService := service.NewWalletService(walletRepo, true)
	conditionService := service.NewConditionService(conditionRepo)

	svc := service.NewBookingService(
		bookingRepo,
		carRepo,
		service.NewVerificationGate(),
		conditionService,
		walletService,
		nil,
		locks,
		10*time.Second,
	)

	return &bookingFixture{
		service:     svc,
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		walletRepo:  walletRepo,
		conditions:  conditionRepo,
		locks:       locks,
	}
}

func availableCar(id, hostID string) *domain.Car {
	return &domain.Car{
		ID:           id,
		HostID:       hostID,
		Make:         "Toyota",
		Model:        "Corolla",
		PlateNumber:  "ABC-123",
		PricePerHour: 500,
		PricePerDay:  3000,
		Availability: domain.Availability{IsAvailable: true},
		IsActive:     true,
	}
}

func startTripQR(bookingID string) string {
	return fmt.Sprintf(`{"bookingId":%q,"action":"start_trip"}`, bookingID)
}

func recordPhotos(t *testing.T, f *bookingFixture, bookingID string, phase domain.ConditionPhase) {
	t.Helper()
	err := f.conditions.Upsert(context.Background(), &domain.ConditionRecord{
		BookingID: bookingID,
		Phase:     phase,
		Photos: domain.PhotoSet{
			Front: "front.jpg",
			Back:  "back.jpg",
			Left:  "left.jpg",
			Right: "right.jpg",
		},
		CompletedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBooking_FullLifecycleCreditsHostOnce(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.carRepo.AddCar(availableCar("car-1", "host-1"))

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	booking, err := f.service.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartTime: start,
		EndTime:   start.Add(25 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != domain.BookingStatusUpcoming {
		t.Fatalf("expected upcoming status, got %s", booking.Status)
	}
	if booking.TotalAmount != 3780 {
		t.Errorf("expected total 3780, got %v", booking.TotalAmount)
	}

	recordPhotos(t, f, booking.ID, domain.ConditionPhaseBefore)

	activated, err := f.service.StartTrip(context.Background(), service.StartTripRequest{
		BookingID: booking.ID,
		Proof: service.VerificationProof{
			BiometricPassed: true,
			QRPayload:       startTripQR(booking.ID),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activated.Status != domain.BookingStatusActive {
		t.Fatalf("expected active status, got %s", activated.Status)
	}
	if activated.ActivatedAt.IsZero() {
		t.Error("expected ActivatedAt to be set")
	}

	recordPhotos(t, f, booking.ID, domain.ConditionPhaseAfter)

	result, err := f.service.EndTrip(context.Background(), service.EndTripRequest{BookingID: booking.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Booking.Status != domain.BookingStatusCompleted {
		t.Fatalf("expected completed status, got %s", result.Booking.Status)
	}
	if result.Payout == nil {
		t.Fatal("expected a payout transaction")
	}
	if result.Payout.AccountID != "host-1" || result.Payout.Amount != 3780 {
		t.Errorf("expected 3780 credited to host-1, got %v to %s", result.Payout.Amount, result.Payout.AccountID)
	}
	if result.Invoice.TotalPayout != 3780 {
		t.Errorf("expected invoice payout 3780, got %v", result.Invoice.TotalPayout)
	}

	// Re-ending the completed booking must fail and must not credit again.
	_, err = f.service.EndTrip(context.Background(), service.EndTripRequest{BookingID: booking.ID})
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if f.walletRepo.CountTransactions() != 1 {
		t.Errorf("expected exactly 1 ledger entry, got %d", f.walletRepo.CountTransactions())
	}
}

func TestBooking_StartRequiresBeforePhotos(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:       "booking-1",
		CarID:    "car-1",
		HostID:   "host-1",
		RenterID: "renter-1",
		Status:   domain.BookingStatusUpcoming,
	})

	// Verification passes but no "before" record exists.
	_, err := f.service.StartTrip(context.Background(), service.StartTripRequest{
		BookingID: "booking-1",
		Proof: service.VerificationProof{
			BiometricPassed: true,
			QRPayload:       startTripQR("booking-1"),
		},
	})
	if !errors.Is(err, service.ErrConditionCheckMissing) {
		t.Fatalf("expected ErrConditionCheckMissing, got %v", err)
	}

	// The booking must still be upcoming.
	stored := f.bookingRepo.GetBooking("booking-1")
	if stored.Status != domain.BookingStatusUpcoming {
		t.Errorf("expected booking to stay upcoming, got %s", stored.Status)
	}
}

func TestBooking_StartRejectsFailedVerification(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:     "booking-1",
		Status: domain.BookingStatusUpcoming,
	})
	recordPhotos(t, f, "booking-1", domain.ConditionPhaseBefore)

	cases := []struct {
		name  string
		proof service.VerificationProof
	}{
		{"biometric failed", service.VerificationProof{BiometricPassed: false, QRPayload: startTripQR("booking-1")}},
		{"wrong booking in QR", service.VerificationProof{BiometricPassed: true, QRPayload: startTripQR("booking-2")}},
		{"wrong action", service.VerificationProof{BiometricPassed: true, QRPayload: `{"bookingId":"booking-1","action":"end_trip"}`}},
		{"malformed QR", service.VerificationProof{BiometricPassed: true, QRPayload: "not-json"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.StartTrip(context.Background(), service.StartTripRequest{
				BookingID: "booking-1",
				Proof:     tc.proof,
			})
			if !errors.Is(err, service.ErrVerificationFailed) {
				t.Fatalf("expected ErrVerificationFailed, got %v", err)
			}
		})
	}
}

func TestBooking_CreateRejectsUnavailableCar(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	car := availableCar("car-1", "host-1")
	car.Availability.IsAvailable = false
	f.carRepo.AddCar(car)

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := f.service.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	if !errors.Is(err, service.ErrCarUnavailable) {
		t.Fatalf("expected ErrCarUnavailable, got %v", err)
	}
}

func TestBooking_CreateRejectsInvertedInterval(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.carRepo.AddCar(availableCar("car-1", "host-1"))

	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := f.service.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartTime: start,
		EndTime:   start,
	})
	if !errors.Is(err, service.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestBooking_CreateHonorsAvailabilityDays(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	car := availableCar("car-1", "host-1")
	// Monday through Friday only.
	car.Availability.DaysOfWeek = []int{1, 2, 3, 4, 5}
	f.carRepo.AddCar(car)

	// 2026-03-07 is a Saturday.
	saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	_, err := f.service.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartTime: saturday,
		EndTime:   saturday.Add(2 * time.Hour),
	})
	if !errors.Is(err, service.ErrCarUnavailable) {
		t.Fatalf("expected ErrCarUnavailable, got %v", err)
	}

	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if _, err := f.service.CreateBooking(context.Background(), service.CreateBookingRequest{
		CarID:     "car-1",
		RenterID:  "renter-1",
		StartTime: monday,
		EndTime:   monday.Add(2 * time.Hour),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBooking_CancelOnlyFromUpcoming(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:     "booking-1",
		Status: domain.BookingStatusUpcoming,
	})

	cancelled, err := f.service.CancelBooking(context.Background(), service.CancelBookingRequest{
		BookingID: "booking-1",
		Reason:    "change of plans",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != domain.BookingStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}
	if cancelled.CancelReason != "change of plans" {
		t.Errorf("expected cancel reason to be stored, got %q", cancelled.CancelReason)
	}

	// Cancelling again fails: cancelled is terminal.
	_, err = f.service.CancelBooking(context.Background(), service.CancelBookingRequest{BookingID: "booking-1"})
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBooking_ActiveCannotBeCancelled(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:     "booking-1",
		Status: domain.BookingStatusActive,
	})

	_, err := f.service.CancelBooking(context.Background(), service.CancelBookingRequest{BookingID: "booking-1"})
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBooking_EndRequiresAfterPhotos(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:          "booking-1",
		HostID:      "host-1",
		Status:      domain.BookingStatusActive,
		TotalAmount: 3780,
	})

	_, err := f.service.EndTrip(context.Background(), service.EndTripRequest{BookingID: "booking-1"})
	if !errors.Is(err, service.ErrConditionCheckMissing) {
		t.Fatalf("expected ErrConditionCheckMissing, got %v", err)
	}

	// No payout without completion.
	if f.walletRepo.CountTransactions() != 0 {
		t.Errorf("expected no ledger entries, got %d", f.walletRepo.CountTransactions())
	}
}

func TestBooking_HeldLockRejectsTransition(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:     "booking-1",
		Status: domain.BookingStatusUpcoming,
	})
	f.locks.Hold("booking-1")

	_, err := f.service.CancelBooking(context.Background(), service.CancelBookingRequest{BookingID: "booking-1"})
	if !errors.Is(err, service.ErrBookingLocked) {
		t.Fatalf("expected ErrBookingLocked, got %v", err)
	}
}

func TestBooking_PayoutFailureStillCompletesBooking(t *testing.T) {
	t.Parallel()

	f := newBookingFixture()
	f.bookingRepo.AddBooking(&domain.Booking{
		ID:          "booking-1",
		HostID:      "host-1",
		Status:      domain.BookingStatusActive,
		TotalAmount: 3780,
	})
	recordPhotos(t, f, "booking-1", domain.ConditionPhaseAfter)
	f.walletRepo.CreateError = errors.New("ledger unavailable")

	result, err := f.service.EndTrip(context.Background(), service.EndTripRequest{BookingID: "booking-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Booking.Status != domain.BookingStatusCompleted {
		t.Fatalf("expected completed status, got %s", result.Booking.Status)
	}
	if result.Payout != nil {
		t.Error("expected nil payout when the credit fails")
	}
}
