package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/getmentor/readme-generator/pkg/logger"
	"github.com/getmentor/readme-generator/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietPrefixes are routes whose successful requests are only logged at debug level
var quietPrefixes = []string{"/api/healthcheck", "/api/metrics", "/static/"}

func isQuiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ObservabilityMiddleware instruments HTTP requests with metrics and logging
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		metrics.ActiveRequests.WithLabelValues(method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method).Dec()

		c.Next()

		// Route template, not the raw path, keeps label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, statusStr).Inc()

		actualPath := c.Request.URL.Path
		if status < 400 && isQuiet(actualPath) {
			logger.Debug("HTTP request",
				zap.String("method", method),
				zap.String("path", actualPath),
				zap.Int("status", status))
			return
		}

		// Request bodies carry user profile text and are never logged
		fields := []zap.Field{
			zap.String("route", route),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int64("request_size", c.Request.ContentLength),
			zap.Int("response_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		logger.LogHTTPRequest(c.Request.Context(), method, actualPath, status, duration, fields...)
	}
}
