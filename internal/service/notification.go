package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"swiftride/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationTripStarted      NotificationType = "TRIP_STARTED"
	NotificationTripCompleted    NotificationType = "TRIP_COMPLETED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationPayoutCredited   NotificationType = "PAYOUT_CREDITED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Push notification client (FCM, APNS)
	// - SMS client
	// - Email client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingConfirmed notifies both parties that a booking was created.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	data := map[string]interface{}{
		"booking_id":   booking.ID,
		"car_id":       booking.CarID,
		"total_amount": booking.TotalAmount,
		"start_time":   booking.StartTime,
	}

	_ = s.send(ctx, Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.RenterID,
		Title:       "Booking Confirmed",
		Message:     fmt.Sprintf("Your booking is confirmed. Total: Rs. %.0f", booking.TotalAmount),
		Data:        data,
		CreatedAt:   time.Now(),
	})

	return s.send(ctx, Notification{
		Type:        NotificationBookingConfirmed,
		RecipientID: booking.HostID,
		Title:       "New Booking",
		Message:     "Your car has a new booking.",
		Data:        data,
		CreatedAt:   time.Now(),
	})
}

// NotifyTripStarted notifies the renter that the trip is active.
func (s *NotificationService) NotifyTripStarted(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationTripStarted,
		RecipientID: booking.RenterID,
		Title:       "Trip Started",
		Message:     "The car is now active. Drive safely!",
		Data: map[string]interface{}{
			"booking_id":   booking.ID,
			"activated_at": booking.ActivatedAt,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripCompleted notifies the host that the trip ended and the
// payout amount.
func (s *NotificationService) NotifyTripCompleted(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationTripCompleted,
		RecipientID: booking.HostID,
		Title:       "Trip Completed",
		Message:     fmt.Sprintf("The booking has been closed. Rs. %.0f has been added to your wallet.", booking.TotalAmount),
		Data: map[string]interface{}{
			"booking_id":   booking.ID,
			"total_amount": booking.TotalAmount,
			"completed_at": booking.CompletedAt,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyBookingCancelled notifies the host that a booking was cancelled.
func (s *NotificationService) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, Notification{
		Type:        NotificationBookingCancelled,
		RecipientID: booking.HostID,
		Title:       "Booking Cancelled",
		Message:     "A booking for your car was cancelled.",
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"reason":     booking.CancelReason,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyPayoutCredited notifies the host that earnings reached the wallet.
func (s *NotificationService) NotifyPayoutCredited(ctx context.Context, txn *domain.WalletTransaction) error {
	return s.send(ctx, Notification{
		Type:        NotificationPayoutCredited,
		RecipientID: txn.AccountID,
		Title:       "Payout Credited",
		Message:     fmt.Sprintf("Rs. %.0f credited to your wallet.", txn.Amount),
		Data: map[string]interface{}{
			"transaction_id": txn.ID,
			"amount":         txn.Amount,
		},
		CreatedAt: time.Now(),
	})
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
