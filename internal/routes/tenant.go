package routes

import (
	"github.com/gin-gonic/gin"

	"tenanttheme/internal/handlers"
)

type TenantRoutes struct {
	handler *handlers.TenantHandler
}

func NewTenantRoutes(handler *handlers.TenantHandler) *TenantRoutes {
	return &TenantRoutes{handler: handler}
}

func (r *TenantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tenants", r.handler.ListTenants)
}
