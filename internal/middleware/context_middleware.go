package middleware

import (
	"github.com/sohan418/leave-management-backend/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger scopes the request logger with the request id and the
// authenticated caller, then propagates it through the standard context so
// services never touch gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		fields := []zap.Field{zap.String("request_id", rid)}
		if actor, ok := GetActor(c); ok {
			fields = append(fields, zap.String("email", actor.Email))
		}
		reqLogger := logger.With(fields...)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
