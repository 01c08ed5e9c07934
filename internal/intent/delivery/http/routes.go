package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pKa1/loveSonia/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP and carries the caller scope.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	intents := rg.Group("/intents", mw.RateLimit(), mw.Scope())
	{
		intents.POST("/parse", h.Parse)
		intents.POST("/voice", h.Voice)
		intents.POST("/:id/confirm", h.Confirm)
		intents.DELETE("/:id", h.Cancel)
	}
}
