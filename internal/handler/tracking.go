package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swiftride/internal/service"
)

// TrackingHandler handles HTTP requests for live trip tracking.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// UpdateLocationRequest is the HTTP request body for a GPS fix.
type UpdateLocationRequest struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	SpeedKPH   float64 `json:"speed_kph"`
	Heading    float64 `json:"heading"`
	IgnitionOn bool    `json:"ignition_on"`
}

// UpdateLocation handles POST /v1/tracking/:bookingId/location
func (h *TrackingHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.trackingService.UpdateLocation(c.Request.Context(), service.UpdateLocationRequest{
		BookingID:  c.Param("bookingId"),
		Lat:        req.Lat,
		Lng:        req.Lng,
		SpeedKPH:   req.SpeedKPH,
		Heading:    req.Heading,
		IgnitionOn: req.IgnitionOn,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"recorded": true})
}

// TelemetryResponse is the HTTP representation of the latest GPS fix.
type TelemetryResponse struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	SpeedKPH   float64 `json:"speed_kph"`
	Heading    float64 `json:"heading"`
	IgnitionOn bool    `json:"ignition_on"`
	RecordedAt string  `json:"recorded_at"`
}

// GetLocation handles GET /v1/tracking/:bookingId/location
func (h *TrackingHandler) GetLocation(c *gin.Context) {
	status, err := h.trackingService.GetLocation(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"kill_switch": status.KillSwitch}
	if status.Telemetry != nil {
		response["telemetry"] = TelemetryResponse{
			Lat:        status.Telemetry.Lat,
			Lng:        status.Telemetry.Lng,
			SpeedKPH:   status.Telemetry.SpeedKPH,
			Heading:    status.Telemetry.Heading,
			IgnitionOn: status.Telemetry.IgnitionOn,
			RecordedAt: status.Telemetry.RecordedAt.Format(time.RFC3339),
		}
	}

	respondJSON(c, http.StatusOK, response)
}

// KillSwitchRequest is the HTTP request body for the kill switch.
type KillSwitchRequest struct {
	Enabled bool `json:"enabled"`
}

// SetKillSwitch handles POST /v1/tracking/:bookingId/kill-switch
func (h *TrackingHandler) SetKillSwitch(c *gin.Context) {
	var req KillSwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.trackingService.SetKillSwitch(c.Request.Context(), c.Param("bookingId"), req.Enabled); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"kill_switch": req.Enabled})
}
