// Conclave server — multi-agent meeting orchestration over HTTP,
// WebSocket, and server-sent events.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conclave-ai/conclave/pkg/api"
	"github.com/conclave-ai/conclave/pkg/bus"
	"github.com/conclave-ai/conclave/pkg/config"
	"github.com/conclave-ai/conclave/pkg/database"
	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/runner"
	"github.com/conclave-ai/conclave/pkg/secrets"
	"github.com/conclave-ai/conclave/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	slog.Info("Starting conclave", "http_port", cfg.HTTPPort)

	// 1. Database (applies pending migrations)
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Event bus: broker-backed when REDIS_URL is set, in-process
	// otherwise. Selected once, immutable afterwards.
	var eventBus bus.Bus
	if cfg.RedisURL != "" {
		redisBus, err := bus.NewRedisBus(ctx, cfg.RedisURL, cfg.Runner.SubscriberQueueSize)
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		eventBus = redisBus
		slog.Info("Using redis event bus")
	} else {
		eventBus = bus.NewMemoryBus(cfg.Runner.SubscriberQueueSize)
		slog.Info("Using in-process event bus")
	}
	defer func() {
		if err := eventBus.Close(context.Background()); err != nil {
			slog.Error("Error closing event bus", "error", err)
		}
	}()

	// 3. Secret encryption for stored provider keys and webhook secrets
	encryptor, err := secrets.NewEncryptor(cfg.EncryptionSecret)
	if err != nil {
		slog.Error("Failed to initialize encryptor (set ENCRYPTION_SECRET)", "error", err)
		os.Exit(1)
	}

	// 4. Services
	envKeys := llm.StaticKeys{
		llm.ProviderOpenAI:    cfg.Providers.OpenAI,
		llm.ProviderAnthropic: cfg.Providers.Anthropic,
		llm.ProviderDeepSeek:  cfg.Providers.DeepSeek,
	}
	teamService := services.NewTeamService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)
	meetingService := services.NewMeetingService(dbClient.Client)
	artifactService := services.NewArtifactService(dbClient.Client, meetingService)
	webhookService := services.NewWebhookService(dbClient.Client, encryptor)
	providerKeyService := services.NewProviderKeyService(dbClient.Client, encryptor, envKeys)
	userService := services.NewUserService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. LLM registry and meeting engine
	registry := llm.NewRegistry(providerKeyService, llm.RetryConfig{
		MaxRetries:      cfg.Runner.MaxRetries,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	})
	engine := meeting.NewEngine(registry, cfg.Runner.LLMCallTimeout)

	// 6. Background runner + startup recovery sweep
	meetingRunner := runner.New(engine, meetingService, agentService, teamService,
		artifactService, webhookService, eventBus, runner.Config{
			MeetingTimeout:  cfg.Runner.MeetingTimeout,
			ContextBudget:   cfg.Runner.ContextCharBudget,
			ShutdownTimeout: cfg.Runner.GracefulShutdownTimeout,
		})
	if _, err := meetingRunner.RecoverOrphans(ctx); err != nil {
		slog.Error("Startup recovery sweep failed", "error", err)
		// Non-fatal — continue
	}

	// 7. HTTP server
	httpServer := api.NewServer(cfg, dbClient, api.Services{
		Teams:        teamService,
		Agents:       agentService,
		Meetings:     meetingService,
		Artifacts:    artifactService,
		Webhooks:     webhookService,
		ProviderKeys: providerKeyService,
		Users:        userService,
	}, meetingRunner, eventBus)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Conclave started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: drain meeting workers first so in-flight
	// turns persist and meetings revert to pending, then stop HTTP.
	runnerCtx, runnerCancel := context.WithTimeout(ctx, cfg.Runner.GracefulShutdownTimeout)
	defer runnerCancel()
	if err := meetingRunner.Shutdown(runnerCtx); err != nil {
		slog.Warn("Runner shutdown incomplete — stale meetings will be recovered on restart", "error", err)
	} else {
		slog.Info("Meeting workers stopped gracefully")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
