package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/notelink/internal/middleware"
)

type RouterDeps struct {
	Shares *ShareHandler
	// ResolveLimitWindow throttles public token resolution per client
	// IP; zero disables the limiter.
	ResolveLimitWindow time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/share", deps.Shares.Create)
	api.GET("/share/:token", middleware.RateLimit(deps.ResolveLimitWindow), deps.Shares.Resolve)
	api.DELETE("/share/:token", deps.Shares.Revoke)
}
