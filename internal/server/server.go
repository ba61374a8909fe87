// Package server wires the HTTP surface together: routing, middleware, and
// the MCP, session, health, and metrics endpoints.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"weather-mcp-go/internal/config"
	"weather-mcp-go/internal/mcp"
	"weather-mcp-go/internal/openweather"
	"weather-mcp-go/internal/session"
	"weather-mcp-go/internal/telemetry"
	"weather-mcp-go/internal/tools"
	"weather-mcp-go/internal/tools/weather"
)

// Server bundles the HTTP handler with the background services it owns.
type Server struct {
	Handler http.Handler
	Sweeper *session.Sweeper
}

// New builds the full server from configuration.
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	metrics := telemetry.NewMetrics()

	client := openweather.New(openweather.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		APIKey:    cfg.Upstream.APIKey,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.Timeout,
	}, logger, metrics)

	registry := tools.NewRegistry()
	registry.Register(weather.NewAlertsTool(client, logger))
	registry.Register(weather.NewForecastTool(client, logger))
	registry.Register(weather.NewCurrentTool(client, logger))

	for _, def := range registry.List() {
		logger.Info().
			Interface("tool", def["name"]).
			Msg("Registered tool")
	}

	mcpHandler := mcp.NewHandler(telemetry.NewToolRegistryWrapper(registry, metrics), logger)

	sessionManager := session.NewManager(cfg.Session.Timeout, logger)
	sessionHandler := session.NewHandler(sessionManager, logger)
	sweeper := session.NewSweeper(sessionManager, cfg.Session.CleanupInterval, logger)

	middlewareConfig := session.DefaultMiddlewareConfig()
	middlewareConfig.RequireSession = cfg.Session.RequireSession
	sessionMiddleware := session.NewMiddleware(sessionManager, middlewareConfig, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(telemetry.HTTPMetricsMiddleware(metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", session.HeaderName},
		ExposedHeaders:   []string{session.HeaderName, "Content-Type", "Cache-Control", "Connection"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(sessionMiddleware.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/sessions", sessionHandler.Create)
	r.Delete("/sessions", sessionHandler.Delete)

	r.Post("/mcp", mcpHandler.ServeMessage)
	r.Get("/sse", mcpHandler.ServeSSE)

	return &Server{
		Handler: r,
		Sweeper: sweeper,
	}, nil
}
