package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tenanttheme/internal/responses"
	"tenanttheme/internal/services"
	"tenanttheme/internal/utils"
)

type ThemeConfigHandler struct {
	themeService *services.ThemeService
}

func NewThemeConfigHandler(themeService *services.ThemeService) *ThemeConfigHandler {
	return &ThemeConfigHandler{
		themeService: themeService,
	}
}

// GetThemeConfig handles GET /theme-config/:tenantId
func (h *ThemeConfigHandler) GetThemeConfig(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID, err := utils.ParseID(c.Param("tenantId"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "tenantId must be a valid number")
		return
	}

	cfg, err := h.themeService.ResolveThemeConfig(ctx, tenantID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("tenant_id", tenantID).Msg("resolve theme config failed")
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to fetch theme config")
		return
	}
	if cfg == nil {
		responses.Fail(c, http.StatusNotFound, nil, fmt.Sprintf("No tenant found for id=%d", tenantID))
		return
	}

	c.JSON(http.StatusOK, cfg)
}
