package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

const callerKey = "caller"

// Auth validates the Bearer token and stores the caller identity in the
// context. Downstream, the core trusts this identity without re-verifying.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header, use Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(callerKey, models.Caller{ID: claims.UserID, Role: models.Role(claims.Role)})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller set by Auth.
func CallerFrom(c *gin.Context) (models.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return models.Caller{}, false
	}
	caller, ok := v.(models.Caller)
	return caller, ok
}
