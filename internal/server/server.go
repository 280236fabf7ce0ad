package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tenanttheme/internal/config"
	"tenanttheme/internal/handlers"
	"tenanttheme/internal/middlewares"
	"tenanttheme/internal/repositories"
	"tenanttheme/internal/routes"
	"tenanttheme/internal/services"
)

// NewServer wires the handlers onto db and returns a configured http.Server.
// The caller owns db and the server lifecycle.
func NewServer(cfg config.Config, db *gorm.DB, log zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewRouter(cfg.Server, db, log),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg config.ServerConfig, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	// Dependency injection
	tenantRepo := repositories.NewTenantRepository(db)
	componentRepo := repositories.NewComponentRepository(db)
	tenantService := services.NewTenantService(tenantRepo)
	themeService := services.NewThemeService(tenantRepo, componentRepo)

	healthHandler := handlers.NewHealthHandler(config.ServiceName)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	themeConfigHandler := handlers.NewThemeConfigHandler(themeService)

	router := gin.New()
	router.Use(middlewares.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))

	routes.RegisterRoutes(router, cfg.APIPrefix, healthHandler, tenantHandler, themeConfigHandler)

	return router
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
