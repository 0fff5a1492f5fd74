package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "zevro/internal/pkg/jwt"
	"zevro/internal/pkg/response"
)

const (
	ContextKeyAdminUsername = "admin_username"
	ContextKeyAdminRole     = "admin_role"
)

// AdminAuth verifies the Bearer token on every admin route. A missing
// token and a bad token produce distinct messages; both abort before any
// handler work happens.
func AdminAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || tokenStr == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please login again")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminUsername, claims.Username)
		c.Set(ContextKeyAdminRole, claims.Role)

		c.Next()
	}
}
