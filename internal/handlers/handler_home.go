package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the unauthenticated landing and health endpoints.
type HomeHandler struct{}

// Home identifies the service.
func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "acmebank", "status": "ok"})
}

// Health reports process liveness.
func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
