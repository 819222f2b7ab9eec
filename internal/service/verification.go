package service

import (
	"context"
	"encoding/json"
)

// qrActionStartTrip is the action field the renter's QR code must carry.
const qrActionStartTrip = "start_trip"

// VerificationProof is the two-factor evidence collected by the host's
// device before a trip may start: an opaque pass/fail biometric signal
// and the raw QR payload scanned from the renter's screen.
type VerificationProof struct {
	BiometricPassed bool
	QRPayload       string
}

// VerificationGateInterface defines the verification gate contract.
// This interface allows for testing with mock implementations.
type VerificationGateInterface interface {
	Verify(ctx context.Context, bookingID string, proof VerificationProof) error
}

// VerificationGate validates start-trip proofs. Both factors must pass
// within the same attempt; there is no partial acceptance.
type VerificationGate struct{}

// NewVerificationGate creates a new VerificationGate.
func NewVerificationGate() *VerificationGate {
	return &VerificationGate{}
}

type qrPayload struct {
	BookingID string `json:"bookingId"`
	Action    string `json:"action"`
}

// Verify accepts a proof only if the biometric check passed and the QR
// payload matches {bookingId, action: "start_trip"} exactly.
func (g *VerificationGate) Verify(ctx context.Context, bookingID string, proof VerificationProof) error {
	if !proof.BiometricPassed {
		return ErrVerificationFailed
	}

	var payload qrPayload
	if err := json.Unmarshal([]byte(proof.QRPayload), &payload); err != nil {
		return ErrVerificationFailed
	}

	if payload.BookingID != bookingID || payload.Action != qrActionStartTrip {
		return ErrVerificationFailed
	}

	return nil
}

// Ensure VerificationGate implements VerificationGateInterface.
var _ VerificationGateInterface = (*VerificationGate)(nil)
