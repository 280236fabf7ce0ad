package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tenanttheme/internal/repositories"
	"tenanttheme/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	tenantRepo := repositories.NewTenantRepository(db)
	componentRepo := repositories.NewComponentRepository(db)

	router := gin.New()
	router.GET("/health", NewHealthHandler("tenant-theme-poc-backend").Health)
	router.GET("/tenants", NewTenantHandler(services.NewTenantService(tenantRepo)).ListTenants)
	router.GET("/theme-config/:tenantId", NewThemeConfigHandler(services.NewThemeService(tenantRepo, componentRepo)).GetThemeConfig)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}
