package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/dto"
	"github.com/acmebank/acmebank/internal/middleware"
)

// LedgerHandler handles the balance-affecting transaction endpoints.
type LedgerHandler struct {
	ledger portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// registerLedgerRoutes sets up the authenticated transaction routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := NewLedgerHandler(ledger)
	txns := rg.Group("/transactions")
	{
		txns.POST("/deposit", h.Deposit)
		txns.POST("/withdrawal", h.Withdrawal)
		txns.POST("/payment", h.Payment)
	}
}

// Deposit posts a deposit to the authenticated account.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidAmount)
		return
	}

	txn, err := h.ledger.PostDeposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// Withdrawal posts a withdrawal from the authenticated account.
func (h *LedgerHandler) Withdrawal(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidAmount)
		return
	}

	txn, err := h.ledger.PostWithdrawal(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// Payment posts a utility bill payment from the authenticated account.
func (h *LedgerHandler) Payment(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "you must select a valid service to pay"})
		return
	}

	txn, err := h.ledger.PostPayment(c.Request.Context(), accountID, req.Amount, domain.UtilityService(req.Service), req.ServiceReference)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
