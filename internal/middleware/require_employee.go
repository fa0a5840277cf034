package middleware

import (
	employeeerrors "github.com/sohan418/leave-management-backend/internal/employee/errors"
	"github.com/sohan418/leave-management-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequireEmployee rejects callers whose account has no employee profile yet.
// Profile existence is checked at token resolution, so this is a pure
// context check.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.HasEmployeeProfile() {
			errObj := employeeerrors.ErrProfileNotFound
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
