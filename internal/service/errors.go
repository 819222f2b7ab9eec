package service

import "errors"

var (
	// ErrInvalidCarID is returned when car ID is empty.
	ErrInvalidCarID = errors.New("invalid car id")

	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidRenterID is returned when renter ID is empty.
	ErrInvalidRenterID = errors.New("invalid renter id")

	// ErrInvalidHostID is returned when host ID is empty.
	ErrInvalidHostID = errors.New("invalid host id")

	// ErrInvalidAccountID is returned when a wallet account ID is empty.
	ErrInvalidAccountID = errors.New("invalid account id")

	// ErrInvalidUserID is returned when user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrMissingCarField is returned when a required car field is absent.
	ErrMissingCarField = errors.New("missing required car field")

	// ErrInvalidPrice is returned when a car price is not positive.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrImmutableField is returned when an update touches a field that is
	// fixed after creation (make, model, plate number).
	ErrImmutableField = errors.New("field is immutable after creation")

	// ErrInvalidInterval is returned when a booking interval does not end
	// after it starts.
	ErrInvalidInterval = errors.New("end time must be after start time")

	// ErrCarUnavailable is returned when the car is inactive or the
	// requested interval falls outside its availability window.
	ErrCarUnavailable = errors.New("car is not available for the requested interval")

	// ErrInvalidTransition is returned when a booking transition is
	// attempted from the wrong state.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrBookingLocked is returned when another transition on the same
	// booking is in flight.
	ErrBookingLocked = errors.New("booking transition already in progress")

	// ErrVerificationFailed is returned when the start-trip verification
	// gate rejects the proof.
	ErrVerificationFailed = errors.New("renter verification failed")

	// ErrConditionCheckMissing is returned when the required condition
	// record for a transition is absent or incomplete.
	ErrConditionCheckMissing = errors.New("condition check missing or incomplete")

	// ErrIncompletePhotoSet is returned when a condition record lacks a
	// photo for one of the four sides.
	ErrIncompletePhotoSet = errors.New("all four sides of the car must be photographed")

	// ErrInvalidPhase is returned when a condition phase is neither
	// "before" nor "after".
	ErrInvalidPhase = errors.New("invalid condition phase")

	// ErrInvalidAmount is returned when a wallet amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance is returned on debit when overdraft is
	// disabled and the account balance cannot cover the amount.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidRole is returned when a user role is unknown.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidKYCStatus is returned when a KYC review decision is
	// neither approved nor rejected.
	ErrInvalidKYCStatus = errors.New("invalid kyc status")

	// ErrMissingKYCDocument is returned when a KYC submission lacks one of
	// the required documents.
	ErrMissingKYCDocument = errors.New("missing required kyc document")

	// ErrBookingNotActive is returned when tracking is used on a booking
	// that is not in the active state.
	ErrBookingNotActive = errors.New("booking is not active")
)
