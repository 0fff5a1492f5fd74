package contact

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public contact routes. The rate limiter
// wraps only the form submission, not the config lookup.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limiter gin.HandlerFunc) {
	r.POST("/contact", limiter, handler.Submit)
	r.GET("/contact/config", handler.Config)
}
