package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffhub/internal/model"
	"staffhub/internal/service"
)

// UserIDKey is the gin context key the authenticated user id is stored
// under.
const UserIDKey = "userID"

// AuthMiddleware validates the Bearer token and stores the user id on
// the request context.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Authorization header required", ""))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid authorization header", ""))
			return
		}

		userID, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid or expired token", ""))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
