package middleware

import (
	"net/http"
	"strings"

	"clinic-portal/models"
	"clinic-portal/services"
	"clinic-portal/utils"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// AuthMiddleware requires a valid portal JWT whose session is still alive in
// the store. The resolved session lands in the gin context.
func AuthMiddleware(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := resolveSession(c, sessions)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authentication required",
				Code:    "login_required",
			})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// OptionalAuth resolves the session when a valid token is present but lets
// anonymous requests through. Cart routes use this: browsing and carting work
// logged out, checkout decides for itself.
func OptionalAuth(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, ok := resolveSession(c, sessions); ok {
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context, sessions services.SessionStore) (*models.Session, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateToken(tokenParts[1])
	if err != nil {
		return nil, false
	}

	session, ok := sessions.Get(c.Request.Context(), claims.SessionID)
	if !ok {
		return nil, false
	}
	return &session, true
}

// GetSession returns the session placed by AuthMiddleware or OptionalAuth.
func GetSession(c *gin.Context) (*models.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok
}
