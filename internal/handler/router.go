package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"casamento/registry/internal/config"
	"casamento/registry/internal/handler/middleware"
	"casamento/registry/internal/metrics"
	"casamento/registry/internal/model"
	jwtpkg "casamento/registry/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	collector *metrics.Collector,
	authHandler *AuthHandler,
	listHandler *ListHandler,
	guestHandler *GuestHandler,
	catalogHandler *CatalogHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))
	if collector != nil {
		r.Use(collector.Middleware())
		r.GET("/metrics", collector.Handler())
	}

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtManager))
	protected.POST("/auth/logout", authHandler.Logout)

	// Owner (CASAL) routes
	owner := protected.Group("")
	owner.Use(middleware.RequireRole(model.RoleCasal))
	{
		owner.POST("/lists", listHandler.CreateList)
		owner.GET("/lists", listHandler.MyLists)
		owner.PUT("/lists/:list_id", listHandler.UpdateList)
		owner.DELETE("/lists/:list_id", listHandler.DeleteList)
		owner.POST("/lists/:list_id/generate-link", listHandler.GenerateLink)

		owner.POST("/lists/:list_id/items", listHandler.CreateItem)
		owner.PUT("/lists/:list_id/items/:item_id", listHandler.UpdateItem)
		owner.DELETE("/lists/:list_id/items/:item_id", listHandler.DeleteItem)

		owner.GET("/lists/:list_id/tracking", listHandler.Tracking)

		owner.GET("/template-items", catalogHandler.ListTemplateItems)
	}

	// Guest (CONVIDADO) routes
	guest := protected.Group("/guest")
	guest.Use(middleware.RequireRole(model.RoleConvidado))
	{
		guest.GET("/lists/:shareable_link", guestHandler.PublicList)
		guest.POST("/items/:item_id/reserve", guestHandler.Reserve)
		guest.DELETE("/reservations/:reservation_id", guestHandler.CancelReservation)
		guest.POST("/rsvps/:list_id", guestHandler.SubmitRsvp)
		guest.GET("/me/details", guestHandler.MyDetails)
	}

	return r
}
