package leave

import (
	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	catalog *CatalogHandler,
	authzService authz.Service,
	secret string,
	resolver middleware.ActorResolver,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(secret, resolver))
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave", "create"),
			middleware.RequireEmployee(),
			middleware.Idempotency(rdb),
			handler.Apply,
		)

		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "leave", "read"),
			handler.List,
		)

		leaves.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "leave", "read"),
			middleware.RequireEmployee(),
			handler.ListMine,
		)

		leaves.GET("/statistics",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "statistics", "read"),
			handler.Statistics,
		)

		leaves.GET("/calendar",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "calendar", "read"),
			handler.Calendar,
		)

		leaves.GET("/types",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(authzService, "leave_type", "read"),
			catalog.ListLeaveTypes,
		)

		leaves.POST("/types",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave_type", "manage"),
			catalog.CreateLeaveType,
		)

		leaves.PUT("/types/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave_type", "manage"),
			catalog.UpdateLeaveType,
		)

		leaves.GET("/holidays",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(authzService, "holiday", "read"),
			catalog.ListHolidays,
		)

		leaves.POST("/holidays",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "holiday", "manage"),
			catalog.CreateHoliday,
		)

		leaves.DELETE("/holidays/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "holiday", "manage"),
			catalog.DeleteHoliday,
		)

		leaves.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "leave", "read"),
			handler.GetByID,
		)

		leaves.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave", "update"),
			handler.Update,
		)

		leaves.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave", "approve"),
			handler.Decide,
		)

		leaves.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave", "delete"),
			handler.Delete,
		)
	}
}
