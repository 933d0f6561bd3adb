package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/acmebank/acmebank/internal/core/domain"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/dto"
	"github.com/acmebank/acmebank/internal/middleware"
	"github.com/acmebank/acmebank/internal/platform/config"
	"github.com/acmebank/acmebank/internal/utils"
)

// AuthHandler handles registration, login and the forgot-password flow.
type AuthHandler struct {
	registry    portssvc.RegistrySvcFacade
	session     portssvc.SessionSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(registry portssvc.RegistrySvcFacade, session portssvc.SessionSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		registry:    registry,
		session:     session,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Registry, services.Session, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

// Register creates a new account from the registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.registry.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(*account))
}

// Login authenticates by document pair and password, starts the session and
// returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	account, err := h.registry.Authenticate(ctx, domain.DocumentType(req.DocumentType), req.DocumentNumber, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.session.Login(ctx, *account); err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(account.AccountID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Account: dto.ToAccountResponse(*account)})
}

// ForgotPassword runs step one of the reset flow: proving account ownership.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.session.BeginPasswordReset(c.Request.Context(), domain.DocumentType(req.DocumentType), req.DocumentNumber, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "identity verified, you may now set a new password"})
}

// ResetPassword runs step two of the reset flow against the live ticket.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.session.CompletePasswordReset(c.Request.Context(), req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, session portssvc.SessionSvcFacade) {
	h := &SessionHandler{session: session}
	rg.GET("/me", h.Me)
	rg.POST("/auth/logout", h.Logout)
}

// SessionHandler handles the authenticated session endpoints.
type SessionHandler struct {
	session portssvc.SessionSvcFacade
}

// Me refreshes the session snapshot from the registry and returns it.
func (h *SessionHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	account, err := h.session.Refresh(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if accountID, ok := middleware.GetAccountIDFromCtx(ctx); !ok || accountID != account.AccountID {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session does not match token"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// Logout clears the session.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}
