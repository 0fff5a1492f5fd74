package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the admin routes. Login is open; everything
// under /submissions sits behind the bearer-token gate.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	r.POST("/login", handler.Login)

	subs := r.Group("/submissions")
	subs.Use(auth)
	{
		subs.GET("", handler.ListSubmissions)
		subs.GET("/export", handler.Export)
		subs.PUT("/:id", handler.UpdateSubmission)
	}
}
