package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	bookingService   *service.BookingService
	conditionService *service.ConditionService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService, conditionService *service.ConditionService) *BookingHandler {
	return &BookingHandler{
		bookingService:   bookingService,
		conditionService: conditionService,
	}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	CarID          string `json:"car_id"`
	RenterID       string `json:"renter_id"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	PickupLocation string `json:"pickup_location"`
}

// BookingResponse is the HTTP response for booking operations.
type BookingResponse struct {
	ID             string  `json:"id"`
	CarID          string  `json:"car_id"`
	HostID         string  `json:"host_id"`
	RenterID       string  `json:"renter_id"`
	Status         string  `json:"status"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	TotalAmount    float64 `json:"total_amount"`
	PickupLocation string  `json:"pickup_location,omitempty"`
	CreatedAt      string  `json:"created_at"`
	ActivatedAt    string  `json:"activated_at,omitempty"`
	CompletedAt    string  `json:"completed_at,omitempty"`
	CancelledAt    string  `json:"cancelled_at,omitempty"`
	CancelReason   string  `json:"cancel_reason,omitempty"`
}

func toBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             booking.ID,
		CarID:          booking.CarID,
		HostID:         booking.HostID,
		RenterID:       booking.RenterID,
		Status:         string(booking.Status),
		StartTime:      booking.StartTime.Format(time.RFC3339),
		EndTime:        booking.EndTime.Format(time.RFC3339),
		TotalAmount:    booking.TotalAmount,
		PickupLocation: booking.PickupLocation,
		CreatedAt:      booking.CreatedAt.Format(time.RFC3339),
		ActivatedAt:    formatOptionalTime(booking.ActivatedAt),
		CompletedAt:    formatOptionalTime(booking.CompletedAt),
		CancelledAt:    formatOptionalTime(booking.CancelledAt),
		CancelReason:   booking.CancelReason,
	}
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_time, expected RFC3339"})
		return
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end_time, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		CarID:          req.CarID,
		RenterID:       req.RenterID,
		StartTime:      startTime,
		EndTime:        endTime,
		PickupLocation: req.PickupLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// StartTripRequest is the HTTP request body for starting a trip.
type StartTripRequest struct {
	BiometricPassed bool   `json:"biometric_passed"`
	QRPayload       string `json:"qr_payload"`
}

// StartTrip handles POST /v1/bookings/:id/start
func (h *BookingHandler) StartTrip(c *gin.Context) {
	var req StartTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.StartTrip(c.Request.Context(), service.StartTripRequest{
		BookingID: c.Param("id"),
		Proof: service.VerificationProof{
			BiometricPassed: req.BiometricPassed,
			QRPayload:       req.QRPayload,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// InvoiceResponse is the invoice block of an end-trip response.
type InvoiceResponse struct {
	BookingID   string  `json:"booking_id"`
	RentalFee   float64 `json:"rental_fee"`
	DamageFee   float64 `json:"damage_fee"`
	LateFee     float64 `json:"late_fee"`
	TotalPayout float64 `json:"total_payout"`
	IssuedAt    string  `json:"issued_at"`
}

// EndTripResponse is the HTTP response for ending a trip.
type EndTripResponse struct {
	Booking BookingResponse            `json:"booking"`
	Invoice InvoiceResponse            `json:"invoice"`
	Payout  *WalletTransactionResponse `json:"payout,omitempty"`
}

// EndTrip handles POST /v1/bookings/:id/end
func (h *BookingHandler) EndTrip(c *gin.Context) {
	result, err := h.bookingService.EndTrip(c.Request.Context(), service.EndTripRequest{
		BookingID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := EndTripResponse{
		Booking: toBookingResponse(result.Booking),
		Invoice: InvoiceResponse{
			BookingID:   result.Invoice.BookingID,
			RentalFee:   result.Invoice.RentalFee,
			DamageFee:   result.Invoice.DamageFee,
			LateFee:     result.Invoice.LateFee,
			TotalPayout: result.Invoice.TotalPayout,
			IssuedAt:    result.Invoice.IssuedAt.Format(time.RFC3339),
		},
	}
	if result.Payout != nil {
		payout := toWalletTransactionResponse(result.Payout)
		response.Payout = &payout
	}

	respondJSON(c, http.StatusOK, response)
}

// CancelBookingRequest is the HTTP request body for cancelling a booking.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), service.CancelBookingRequest{
		BookingID: c.Param("id"),
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// ListUserBookings handles GET /v1/users/:id/bookings
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	role := domain.Role(c.Query("role"))

	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		response = append(response, toBookingResponse(booking))
	}

	respondJSON(c, http.StatusOK, gin.H{"bookings": response, "total": len(response)})
}

// RecordConditionRequest is the HTTP request body for recording a
// condition check.
type RecordConditionRequest struct {
	Phase  string `json:"phase"`
	Photos struct {
		Front string `json:"front"`
		Back  string `json:"back"`
		Left  string `json:"left"`
		Right string `json:"right"`
	} `json:"photos"`
}

// ConditionResponse is the HTTP response for condition check operations.
type ConditionResponse struct {
	BookingID   string `json:"booking_id"`
	Phase       string `json:"phase"`
	Front       string `json:"front"`
	Back        string `json:"back"`
	Left        string `json:"left"`
	Right       string `json:"right"`
	CompletedAt string `json:"completed_at"`
}

func toConditionResponse(record *domain.ConditionRecord) ConditionResponse {
	return ConditionResponse{
		BookingID:   record.BookingID,
		Phase:       string(record.Phase),
		Front:       record.Photos.Front,
		Back:        record.Photos.Back,
		Left:        record.Photos.Left,
		Right:       record.Photos.Right,
		CompletedAt: record.CompletedAt.Format(time.RFC3339),
	}
}

// RecordCondition handles POST /v1/bookings/:id/condition-checks
func (h *BookingHandler) RecordCondition(c *gin.Context) {
	var req RecordConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.conditionService.RecordCondition(c.Request.Context(), service.RecordConditionRequest{
		BookingID: c.Param("id"),
		Phase:     domain.ConditionPhase(req.Phase),
		Photos: domain.PhotoSet{
			Front: req.Photos.Front,
			Back:  req.Photos.Back,
			Left:  req.Photos.Left,
			Right: req.Photos.Right,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toConditionResponse(record))
}

// GetCondition handles GET /v1/bookings/:id/condition-checks/:phase
func (h *BookingHandler) GetCondition(c *gin.Context) {
	record, err := h.conditionService.GetCondition(c.Request.Context(), c.Param("id"), domain.ConditionPhase(c.Param("phase")))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toConditionResponse(record))
}
