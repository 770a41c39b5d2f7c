package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts every endpoint on the router. Callers own the
// router, so middleware and server lifecycle stay their concern.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/traces", h.CreateTrace)
		v1.GET("/traces/:id", h.GetTrace)
		v1.GET("/traces/:id/steps/:index", h.GetStep)
		v1.GET("/scenarios", h.ListScenarios)
	}
}
