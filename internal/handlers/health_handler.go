package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health handles GET /health. It does not touch the database.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": h.service,
	})
}
