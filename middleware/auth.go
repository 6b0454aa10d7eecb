package middleware

import (
	"context"
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// RoleChecker answers whether an email belongs to an admin.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// VerifyJWT requires a bearer token. A missing header is 401, an invalid or
// expired token is 403. The token email is stored under utils.ContextEmailKey.
func VerifyJWT(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized person"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			zap.L().Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(utils.ContextEmailKey, claims.Email)
		c.Next()
	}
}

// VerifyAdmin must run after VerifyJWT. Non-admin requesters get 403.
func VerifyAdmin(roles RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetString(utils.ContextEmailKey)
		if requester == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}

		isAdmin, err := roles.IsAdmin(c.Request.Context(), requester)
		if err != nil {
			zap.L().Error("admin check failed", zap.String("email", requester), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}

// Requester returns the verified email stored by VerifyJWT.
func Requester(c *gin.Context) string {
	return c.GetString(utils.ContextEmailKey)
}
