package auth

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
	group := r.Group("/auth")
	{
		// Credential endpoints are throttled per IP; there is no actor yet.
		group.POST("/login",
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)

		group.POST("/register",
			middleware.RateLimitByIP(0.2, 2),
			handler.Register,
		)

		group.POST("/register-admin",
			middleware.RateLimitByIP(0.2, 2),
			middleware.AuthMiddleware(secret, resolver),
			middleware.ContextLogger(logger),
			middleware.Authorize(authzService, "user", "manage"),
			handler.RegisterAdmin,
		)

		authed := group.Group("")
		authed.Use(middleware.AuthMiddleware(secret, resolver))
		authed.Use(middleware.ContextLogger(logger))
		{
			authed.GET("/me",
				middleware.RateLimitByUser(3, 10),
				handler.GetMe,
			)

			authed.PUT("/change-password",
				middleware.RateLimitByUser(0.2, 2),
				handler.ChangePassword,
			)
		}
	}
}
