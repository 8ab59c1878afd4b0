package http

import (
	"trade-custody/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The status update is the only write and is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("/status", mw.RateLimit(), h.UpdateStatus)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.GET("/:id/audits", h.Audits)
	}
}
