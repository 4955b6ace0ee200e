package api

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), observe())

	router.GET("/healthz", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(router.Group("/v1"), h)
	return router
}

// RegisterRoutes registers the versioned API routes on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	grades := rg.Group("/grades/:grade")
	{
		grades.GET("/topics", h.HandleTopics)
		grades.GET("/topics/:topic/problem", h.HandleProblem)
	}

	rg.POST("/check", h.HandleCheck)
	rg.GET("/format", h.HandleFormat)
	rg.GET("/stats", h.HandleStats)
}

// observe assigns a request ID, records metrics, and logs each request.
func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := getOrCreateRequestID(c)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()

		requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		slog.Debug("HTTP request",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", elapsed.Milliseconds())
	}
}
