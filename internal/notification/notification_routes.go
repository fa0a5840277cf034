package notification

import (
	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authzService authz.Service,
	secret string,
	resolver middleware.ActorResolver,
	logger *zap.Logger,
) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(secret, resolver))
	notifications.Use(middleware.ContextLogger(logger))
	notifications.Use(middleware.RequireEmployee())
	{
		notifications.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "notification", "read"),
			handler.List,
		)

		notifications.PUT("/:id/read",
			middleware.RateLimitByUser(1, 5),
			middleware.Authorize(authzService, "notification", "read"),
			handler.MarkRead,
		)

		notifications.PUT("/read-all",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "notification", "read"),
			handler.MarkAllRead,
		)
	}
}
