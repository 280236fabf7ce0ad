package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tenanttheme/internal/responses"
	"tenanttheme/internal/services"
)

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// ListTenants handles GET /tenants
func (h *TenantHandler) ListTenants(c *gin.Context) {
	ctx := c.Request.Context()

	tenants, err := h.tenantService.ListTenants(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("list tenants failed")
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to fetch tenants")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenants": tenants})
}
