// Package api exposes the HTTP and WebSocket surface: CRUD for teams,
// agents and meetings, run control, real-time streaming, artifacts,
// webhooks, provider keys, and optional JWT authentication.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/conclave-ai/conclave/pkg/bus"
	"github.com/conclave-ai/conclave/pkg/config"
	"github.com/conclave-ai/conclave/pkg/database"
	"github.com/conclave-ai/conclave/pkg/runner"
	"github.com/conclave-ai/conclave/pkg/services"
)

// Server wires the service layer to the HTTP surface.
type Server struct {
	cfg *config.Config
	db  *database.Client

	teams        *services.TeamService
	agents       *services.AgentService
	meetings     *services.MeetingService
	artifacts    *services.ArtifactService
	webhookSvc   *services.WebhookService
	providerKeys *services.ProviderKeyService
	users        *services.UserService

	runner   *runner.Runner
	eventBus bus.Bus
	tokens   *TokenIssuer

	echo *echo.Echo
	http *http.Server
}

// Services bundles the service-layer dependencies of the server.
type Services struct {
	Teams        *services.TeamService
	Agents       *services.AgentService
	Meetings     *services.MeetingService
	Artifacts    *services.ArtifactService
	Webhooks     *services.WebhookService
	ProviderKeys *services.ProviderKeyService
	Users        *services.UserService
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, db *database.Client, svcs Services, r *runner.Runner, eventBus bus.Bus) *Server {
	s := &Server{
		cfg:          cfg,
		db:           db,
		teams:        svcs.Teams,
		agents:       svcs.Agents,
		meetings:     svcs.Meetings,
		artifacts:    svcs.Artifacts,
		webhookSvc:   svcs.Webhooks,
		providerKeys: svcs.ProviderKeys,
		users:        svcs.Users,
		runner:       r,
		eventBus:     eventBus,
	}
	if cfg.Auth.Enabled {
		s.tokens = NewTokenIssuer(cfg.Auth)
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(corsMiddleware(cfg.CORSOrigins))
	s.registerRoutes(e)
	s.echo = e
	s.http = &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// registerRoutes declares the full route table.
func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)

	apiLimit := rateLimiter(s.cfg.RateLimit.APIMaxRequests, s.cfg.RateLimit.APIWindow)
	authLimit := rateLimiter(s.cfg.RateLimit.AuthMaxRequests, s.cfg.RateLimit.APIWindow)
	runLimit := rateLimiter(s.cfg.RateLimit.LLMMaxRequests, s.cfg.RateLimit.APIWindow)

	if s.cfg.Auth.Enabled {
		auth := e.Group("/auth", authLimit)
		auth.POST("/register", s.registerHandler)
		auth.POST("/login", s.loginHandler)
		auth.POST("/refresh", s.refreshHandler)
	}

	g := e.Group("", apiLimit)
	if s.cfg.Auth.Enabled {
		g.Use(s.requireAuth)
	}

	g.POST("/teams", s.createTeamHandler)
	g.GET("/teams", s.listTeamsHandler)
	g.GET("/teams/:id", s.getTeamHandler)
	g.PATCH("/teams/:id", s.updateTeamHandler)
	g.DELETE("/teams/:id", s.deleteTeamHandler)

	g.POST("/agents", s.createAgentHandler)
	g.GET("/teams/:id/agents", s.listAgentsHandler)
	g.GET("/agents/:id", s.getAgentHandler)
	g.PATCH("/agents/:id", s.updateAgentHandler)
	g.DELETE("/agents/:id", s.deleteAgentHandler)

	g.POST("/meetings", s.createMeetingHandler)
	g.GET("/teams/:id/meetings", s.listMeetingsHandler)
	g.GET("/meetings/:id", s.getMeetingHandler)
	g.DELETE("/meetings/:id", s.deleteMeetingHandler)
	g.GET("/meetings/:id/messages", s.listMessagesHandler)
	g.POST("/meetings/:id/messages", s.addUserMessageHandler)

	g.POST("/meetings/:id/run", s.runMeetingHandler, runLimit)
	g.POST("/meetings/:id/run-background", s.runBackgroundHandler, runLimit)
	g.POST("/meetings/:id/cancel", s.cancelMeetingHandler)
	g.GET("/meetings/:id/status", s.meetingStatusHandler)
	g.GET("/meetings/:id/stream", s.streamHandler)
	g.GET("/ws/meetings/:id", s.wsHandler)

	g.GET("/meetings/:id/artifacts", s.listArtifactsHandler)
	g.POST("/meetings/:id/artifacts/extract", s.extractArtifactsHandler)
	g.GET("/artifacts/:id", s.getArtifactHandler)

	g.POST("/webhooks", s.createWebhookHandler)
	g.GET("/webhooks", s.listWebhooksHandler)
	g.DELETE("/webhooks/:id", s.deleteWebhookHandler)

	g.PUT("/providers/:provider/key", s.setProviderKeyHandler)
	g.DELETE("/providers/:provider/key", s.deleteProviderKeyHandler)
	g.GET("/providers", s.listProvidersHandler)
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
