package http

import (
	"github.com/gin-gonic/gin"

	"muhurat-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	muhurat := rg.Group("/muhurat")
	{
		muhurat.GET("/day", mw.RateLimit(), h.Day)
		muhurat.GET("/day/manual", mw.RateLimit(), h.ManualDay)
	}

	planner := rg.Group("/planner")
	{
		planner.POST("/suggest", mw.RateLimit(), h.Suggest)
	}
}
