package middleware

import (
	"net/http"
	"strings"

	"github.com/Santykk/MERCADEO/internal/user"
	"github.com/Santykk/MERCADEO/internal/utils"

	"github.com/gin-gonic/gin"
)

// extractAccessToken prefers the access_token cookie and falls back to the
// Authorization header.
func extractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// Auth resolves the caller's identity from a JWT, when present, and stores
// it on the request context. Requests without a valid token continue as
// anonymous; access control happens per route.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		ident, err := user.IdentityFromClaims(claims)
		if err != nil {
			c.Next()
			return
		}

		ctx := utils.SetUserContext(c.Request.Context(), ident.UserID, ident.Email, string(ident.Role))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no identity was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller carries the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		if utils.GetUserRoleFromContext(c.Request.Context()) != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
