package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanttheme/internal/handlers"
	"tenanttheme/internal/responses"
)

// RegisterRoutes mounts the read API under prefix ("" mounts at the root).
func RegisterRoutes(router *gin.Engine, prefix string, healthHandler *handlers.HealthHandler, tenantHandler *handlers.TenantHandler, themeConfigHandler *handlers.ThemeConfigHandler) {
	api := router.Group(prefix)

	api.GET("/health", healthHandler.Health)

	tenantRoutes := NewTenantRoutes(tenantHandler)
	tenantRoutes.RegisterRoutes(api)

	themeConfigRoutes := NewThemeConfigRoutes(themeConfigHandler)
	themeConfigRoutes.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		responses.Fail(c, http.StatusNotFound, nil, "route not found")
	})
}
