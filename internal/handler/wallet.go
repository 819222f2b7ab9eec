package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// WalletHandler handles HTTP requests for the wallet ledger.
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// WalletTransactionResponse is the HTTP representation of a ledger entry.
type WalletTransactionResponse struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Reference   string  `json:"reference,omitempty"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

func toWalletTransactionResponse(txn *domain.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:          txn.ID,
		AccountID:   txn.AccountID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Description: txn.Description,
		Reference:   txn.Reference,
		Status:      string(txn.Status),
		Date:        txn.Date.Format(time.RFC3339),
	}
}

// AmountRequest is the HTTP request body for top-ups and withdrawals.
type AmountRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// TopUp handles POST /v1/wallets/:accountId/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	description := req.Description
	if description == "" {
		description = "Wallet top-up"
	}

	txn, err := h.walletService.Credit(c.Request.Context(), c.Param("accountId"), req.Amount, description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toWalletTransactionResponse(txn))
}

// Withdraw handles POST /v1/wallets/:accountId/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	description := req.Description
	if description == "" {
		description = "Wallet withdrawal"
	}

	txn, err := h.walletService.Debit(c.Request.Context(), c.Param("accountId"), req.Amount, description)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toWalletTransactionResponse(txn))
}

// GetBalance handles GET /v1/wallets/:accountId/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletService.GetBalance(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"account_id": c.Param("accountId"),
		"balance":    balance,
	})
}

// GetHistory handles GET /v1/wallets/:accountId/transactions
func (h *WalletHandler) GetHistory(c *gin.Context) {
	transactions, err := h.walletService.GetHistory(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]WalletTransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		response = append(response, toWalletTransactionResponse(txn))
	}

	respondJSON(c, http.StatusOK, gin.H{"transactions": response, "total": len(response)})
}
