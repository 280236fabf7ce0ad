package routes

import (
	"github.com/gin-gonic/gin"

	"tenanttheme/internal/handlers"
)

type ThemeConfigRoutes struct {
	handler *handlers.ThemeConfigHandler
}

func NewThemeConfigRoutes(handler *handlers.ThemeConfigHandler) *ThemeConfigRoutes {
	return &ThemeConfigRoutes{handler: handler}
}

func (r *ThemeConfigRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/theme-config/:tenantId", r.handler.GetThemeConfig)
}
