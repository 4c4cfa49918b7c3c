// Package server wires handlers and middleware into the gin engine.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/getmentor/readme-generator/config"
	"github.com/getmentor/readme-generator/internal/handlers"
	"github.com/getmentor/readme-generator/internal/middleware"
	"github.com/getmentor/readme-generator/internal/services"
	"github.com/getmentor/readme-generator/internal/web"
	"github.com/getmentor/readme-generator/pkg/metrics"
)

// NewRouter builds the engine serving the page, the JSON API and the
// operational endpoints.
func NewRouter(cfg *config.Config, service services.ReadmeServiceInterface) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Without configured origins everything stays same-origin only
	if corsCfg := corsConfig(cfg); len(corsCfg.AllowOrigins) > 0 {
		router.Use(cors.New(corsCfg))
	}

	router.SetHTMLTemplate(web.MustTemplates())
	router.StaticFS("/static", web.Static())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.Limits.RateLimitRPS), cfg.Limits.RateLimitBurst)
	bodyLimit := middleware.BodySizeLimitMiddleware(cfg.Limits.MaxBodyBytes)
	// The form posts the fields twice: as edited and as the accepted snapshot
	formLimit := middleware.BodySizeLimitMiddleware(2 * cfg.Limits.MaxBodyBytes)

	pageHandler := handlers.NewPageHandler(service)
	readmeHandler := handlers.NewReadmeHandler(service)
	healthHandler := handlers.NewHealthHandler()

	// Page routes
	router.GET("/", pageHandler.Index)
	router.POST("/", limiter.Middleware(), formLimit, pageHandler.Submit)
	router.POST("/download", limiter.Middleware(), bodyLimit, pageHandler.Download)

	api := router.Group("/api")

	// Utility endpoints (not versioned - operational endpoints)
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := api.Group("/v1")
	v1.POST("/readme", limiter.Middleware(), bodyLimit, readmeHandler.Generate)
	v1.POST("/readme/download", limiter.Middleware(), bodyLimit, readmeHandler.Download)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	allowedOrigins := append([]string{}, cfg.Server.AllowedOrigins...)
	// Allow localhost in development
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	return cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
}
