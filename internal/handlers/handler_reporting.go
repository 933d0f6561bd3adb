package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acmebank/acmebank/internal/core/domain"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/dto"
	"github.com/acmebank/acmebank/internal/middleware"
)

// ReportingHandler handles the read-only history, statement and certificate
// endpoints.
type ReportingHandler struct {
	reporting   portssvc.ReportingSvcFacade
	recentLimit int
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reporting portssvc.ReportingSvcFacade, recentLimit int) *ReportingHandler {
	return &ReportingHandler{reporting: reporting, recentLimit: recentLimit}
}

// registerReportingRoutes sets up the authenticated reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade, recentLimit int) {
	h := NewReportingHandler(reporting, recentLimit)
	rg.GET("/transactions", h.Transactions)
	rg.GET("/statements/years", h.StatementYears)
	rg.GET("/statements/:year/:month", h.Statement)
	rg.GET("/certificate", h.Certificate)
}

// Transactions returns the account's history newest first, with a summary.
// ?limit=n trims it to the newest n entries; ?recent=true uses the configured
// recent-activity window.
func (h *ReportingHandler) Transactions(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var (
		txns []domain.Transaction
		err  error
	)
	switch {
	case c.Query("limit") != "":
		limit, convErr := strconv.Atoi(c.Query("limit"))
		if convErr != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		txns, err = h.reporting.Recent(c.Request.Context(), accountID, limit)
	case c.Query("recent") == "true":
		txns, err = h.reporting.Recent(c.Request.Context(), accountID, h.recentLimit)
	default:
		txns, err = h.reporting.TransactionsFor(c.Request.Context(), accountID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": dto.ToTransactionResponses(txns),
		"summary":      dto.ToSummaryResponse(h.reporting.Summarize(txns)),
	})
}

// StatementYears returns the selectable statement years, newest first.
func (h *ReportingHandler) StatementYears(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"years": h.reporting.Years()})
}

// Statement returns the monthly statement for the given calendar period.
func (h *ReportingHandler) Statement(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid statement year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid statement month"})
		return
	}

	statement, err := h.reporting.Statement(c.Request.Context(), accountID, year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(*statement))
}

// Certificate returns the account ownership certificate.
func (h *ReportingHandler) Certificate(c *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	cert, err := h.reporting.Certificate(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCertificateResponse(*cert))
}
