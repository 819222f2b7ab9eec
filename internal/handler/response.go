package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidCarID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidRenterID),
		errors.Is(err, service.ErrInvalidHostID),
		errors.Is(err, service.ErrInvalidAccountID),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrMissingCarField),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPhase),
		errors.Is(err, service.ErrIncompletePhotoSet),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidKYCStatus),
		errors.Is(err, service.ErrMissingKYCDocument),
		errors.Is(err, service.ErrImmutableField):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrBookingLocked),
		errors.Is(err, service.ErrCarUnavailable),
		errors.Is(err, service.ErrConditionCheckMissing),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrBookingNotActive),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict

	// Forbidden/Business rule errors
	case errors.Is(err, service.ErrVerificationFailed):
		return http.StatusForbidden

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
