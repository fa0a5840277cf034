package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	autherrors "github.com/sohan418/leave-management-backend/internal/auth/errors"
	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

// ActorResolver loads the caller's identity from the token subject.
// Implemented by the auth service.
type ActorResolver interface {
	ResolveActor(ctx context.Context, email string) (authz.Actor, error)
}

// AuthMiddleware validates the bearer token and attaches the resolved actor
// to the request. The signing secret comes from config, never from the
// environment at request time.
func AuthMiddleware(secret string, resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", nil)
			c.Abort()
			return
		}

		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Subject not found in token", nil)
			c.Abort()
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), email)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}
		if !actor.IsActive {
			errObj := autherrors.ErrInactiveUser
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the actor attached by AuthMiddleware.
func GetActor(c *gin.Context) (authz.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

// MustGetActor is for handlers that only run behind AuthMiddleware. A missing
// actor is a wiring bug, so the zero Actor it returns fails every check.
func MustGetActor(c *gin.Context) authz.Actor {
	actor, _ := GetActor(c)
	return actor
}
