package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// UserHandler handles HTTP requests for users and KYC.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest is the HTTP request body for registration.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UserResponse is the HTTP response for user operations.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	KYCStatus string `json:"kyc_status"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		KYCStatus: string(user.KYCStatus),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), service.RegisterUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.Role(req.Role),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toUserResponse(user))
}

// SubmitKYCRequest is the HTTP request body for submitting KYC documents.
type SubmitKYCRequest struct {
	CNICFront string `json:"cnic_front"`
	CNICBack  string `json:"cnic_back"`
	Selfie    string `json:"selfie"`
}

// SubmitKYC handles POST /v1/users/:id/kyc
func (h *UserHandler) SubmitKYC(c *gin.Context) {
	var req SubmitKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userService.SubmitKYC(c.Request.Context(), c.Param("id"), domain.KYCDocuments{
		CNICFront: req.CNICFront,
		CNICBack:  req.CNICBack,
		Selfie:    req.Selfie,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// ReviewKYCRequest is the HTTP request body for a KYC review decision.
type ReviewKYCRequest struct {
	Status string `json:"status"`
}

// ReviewKYC handles POST /v1/users/:id/kyc/review
func (h *UserHandler) ReviewKYC(c *gin.Context) {
	var req ReviewKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userService.ReviewKYC(c.Request.Context(), c.Param("id"), domain.KYCStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// GetUser handles GET /v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}

	respondJSON(c, http.StatusOK, gin.H{"users": response, "total": len(response)})
}
