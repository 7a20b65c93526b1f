package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/config"
	"github.com/stemsi/school-api/internal/handler"
	"github.com/stemsi/school-api/internal/middleware"
	"github.com/stemsi/school-api/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Department *handler.DepartmentHandler
	Faculty    *handler.FacultyHandler
	Event      *handler.EventHandler
	Notice     *handler.NoticeHandler
	Contact    *handler.ContactHandler
}

// SetupRouter configures all Gin routes with the global middlewares.
// contactLimiter guards POST /contact.
func SetupRouter(
	handlers *Handlers,
	contactLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.GinMode != gin.TestMode {
		router.Use(gin.Logger())
	}

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*).
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every error carries metadata.
	router.Use(response.RequestIDMiddleware())

	router.Use(middleware.Brotli())

	// ─── System ────────────────────────────────────────────────────────
	router.GET("/", handlers.System.Root)
	router.GET("/test", handlers.System.Diagnostics)
	router.GET("/health", handlers.System.Health)

	// ─── Content ───────────────────────────────────────────────────────
	router.GET("/departments", handlers.Department.List)
	router.POST("/departments", handlers.Department.Create)

	router.GET("/faculty", handlers.Faculty.List)
	router.POST("/faculty", handlers.Faculty.Create)

	router.GET("/events", handlers.Event.List)
	router.POST("/events", handlers.Event.Create)

	router.GET("/notices", handlers.Notice.List)
	router.POST("/notices", handlers.Notice.Create)

	router.POST("/contact", contactLimiter.Middleware(), handlers.Contact.Submit)

	return router
}
