package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(secret, resolver))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("/setup",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(authzService, "employee", "read_self"),
			handler.Setup,
		)

		employees.GET("/me",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "employee", "read_self"),
			handler.GetMe,
		)

		employees.PUT("/me",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "employee", "read_self"),
			handler.UpdateMe,
		)

		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.List,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.Create,
		)

		employees.POST("/with-user",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.CreateWithUser,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.GetByID,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.Update,
		)

		employees.PUT("/:id/with-user",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.UpdateWithUser,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.Deactivate,
		)

		// Ownership is checked in the handler; the policy only gates the verb.
		employees.GET("/:id/leave-balance",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "employee", "read_self"),
			handler.GetLeaveBalance,
		)

		employees.POST("/:id/balance-adjustments",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "employee", "manage"),
			handler.AdjustBalance,
		)
	}
}
