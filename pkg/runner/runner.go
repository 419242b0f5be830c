// Package runner executes meetings in background workers decoupled
// from client connections. It enforces single-flight execution per
// meeting, commits every round before the next begins, and bridges
// engine callbacks to the store and the event bus.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conclave-ai/conclave/pkg/bus"
	"github.com/conclave-ai/conclave/pkg/extract"
	"github.com/conclave-ai/conclave/pkg/meeting"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/services"
	"github.com/conclave-ai/conclave/pkg/webhook"
)

// ErrShuttingDown is returned for start attempts during shutdown.
var ErrShuttingDown = errors.New("runner is shutting down")

// MeetingStore is the slice of the repository gateway the runner needs.
type MeetingStore interface {
	GetMeeting(ctx context.Context, meetingID string, withMessages bool) (models.Meeting, error)
	ListMessages(ctx context.Context, meetingID string) ([]models.Message, error)
	SaveAssistantMessage(ctx context.Context, msg models.Message) (models.Message, error)
	MarkRunning(ctx context.Context, meetingID string) (models.Meeting, error)
	CompleteRound(ctx context.Context, meetingID string, round int) (models.Meeting, error)
	MarkPending(ctx context.Context, meetingID string) error
	MarkFailed(ctx context.Context, meetingID, errorMessage string) error
	ResetStaleRunning(ctx context.Context, isLive func(meetingID string) bool) (int, error)
	ContextTranscripts(ctx context.Context, meetingIDs []string) ([]extract.Transcript, error)
}

// AgentStore loads the speaker pool.
type AgentStore interface {
	ListAgents(ctx context.Context, teamID string) ([]models.Agent, error)
}

// TeamStore resolves the team's default language.
type TeamStore interface {
	GetTeam(ctx context.Context, teamID string) (models.Team, error)
}

// ArtifactExtractor runs post-completion extraction.
type ArtifactExtractor interface {
	ExtractBestEffort(ctx context.Context, meetingID string)
}

// WebhookNotifier resolves delivery targets for terminal events.
type WebhookNotifier interface {
	ActiveTargets(ctx context.Context) ([]webhook.Target, error)
}

// Config bounds runner execution.
type Config struct {
	MeetingTimeout  time.Duration
	ContextBudget   int
	ShutdownTimeout time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		MeetingTimeout:  30 * time.Minute,
		ContextBudget:   extract.DefaultContextBudget,
		ShutdownTimeout: 30 * time.Second,
	}
}

// worker is one live background execution.
type worker struct {
	meetingID string
	stop      chan struct{}
	stopOnce  sync.Once
	done      chan struct{}
}

func (w *worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Runner owns the process-wide single-flight registry.
type Runner struct {
	engine     *meeting.Engine
	meetings   MeetingStore
	agents     AgentStore
	teams      TeamStore
	artifacts  ArtifactExtractor
	webhooks   WebhookNotifier
	dispatcher *webhook.Dispatcher
	bus        bus.Bus
	cfg        Config

	mu     sync.Mutex
	active map[string]*worker
	closed bool
	wg     sync.WaitGroup
}

// New creates a runner. webhooks may be nil when webhook delivery is
// not configured.
func New(engine *meeting.Engine, meetings MeetingStore, agents AgentStore, teams TeamStore,
	artifacts ArtifactExtractor, webhooks WebhookNotifier, eventBus bus.Bus, cfg Config) *Runner {
	if cfg.MeetingTimeout <= 0 {
		cfg.MeetingTimeout = DefaultConfig().MeetingTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}
	return &Runner{
		engine:     engine,
		meetings:   meetings,
		agents:     agents,
		teams:      teams,
		artifacts:  artifacts,
		webhooks:   webhooks,
		dispatcher: webhook.NewDispatcher(),
		bus:        eventBus,
		cfg:        cfg,
		active:     make(map[string]*worker),
	}
}

// IsRunning reports whether a worker is live for the meeting.
func (r *Runner) IsRunning(meetingID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[meetingID]
	return ok
}

// StartBackground starts a worker for the meeting. It returns false
// when a worker is already live or another process holds the running
// state; validation errors propagate.
func (r *Runner) StartBackground(ctx context.Context, meetingID string, opts models.RunOptions) (bool, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false, ErrShuttingDown
	}
	if _, ok := r.active[meetingID]; ok {
		r.mu.Unlock()
		return false, nil
	}
	// Reserve the slot before the store transition so a racing start
	// observes the registry, not a half-started state.
	w := &worker{meetingID: meetingID, stop: make(chan struct{}), done: make(chan struct{})}
	r.active[meetingID] = w
	r.mu.Unlock()

	m, err := r.meetings.MarkRunning(ctx, meetingID)
	if err != nil {
		r.remove(meetingID)
		close(w.done)
		if errors.Is(err, services.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	// Stale replay from a prior run must not leak to new subscribers.
	if err := r.bus.ClearReplay(ctx, meetingID); err != nil {
		slog.Warn("Failed to clear replay buffer", "meeting_id", meetingID, "error", err)
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(w.done)
		defer r.remove(meetingID)

		runCtx, cancel := context.WithTimeout(context.Background(), r.cfg.MeetingTimeout)
		defer cancel()
		r.run(runCtx, m, opts, w.stop)
	}()

	slog.Info("Background run started",
		"meeting_id", meetingID,
		"current_round", m.CurrentRound,
		"max_rounds", m.MaxRounds)
	return true, nil
}

// RunSync executes the meeting on the caller's goroutine, holding the
// same single-flight slot as a background worker. It returns the
// meeting with its full transcript. A cancellation mid-run is not an
// error: the meeting comes back pending with the turns persisted so
// far.
func (r *Runner) RunSync(ctx context.Context, meetingID string, opts models.RunOptions) (models.Meeting, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return models.Meeting{}, ErrShuttingDown
	}
	if _, ok := r.active[meetingID]; ok {
		r.mu.Unlock()
		return models.Meeting{}, services.ErrConflict
	}
	w := &worker{meetingID: meetingID, stop: make(chan struct{}), done: make(chan struct{})}
	r.active[meetingID] = w
	r.mu.Unlock()
	defer func() {
		r.remove(meetingID)
		close(w.done)
	}()

	m, err := r.meetings.MarkRunning(ctx, meetingID)
	if err != nil {
		return models.Meeting{}, err
	}
	if err := r.bus.ClearReplay(ctx, meetingID); err != nil {
		slog.Warn("Failed to clear replay buffer", "meeting_id", meetingID, "error", err)
	}

	if runErr := r.run(ctx, m, opts, w.stop); runErr != nil && !errors.Is(runErr, meeting.ErrStopped) {
		return models.Meeting{}, runErr
	}
	return r.meetings.GetMeeting(ctx, meetingID, true)
}

// Cancel signals the live worker, if any, to stop at the next turn
// boundary. Returns whether a worker was signaled.
func (r *Runner) Cancel(meetingID string) bool {
	r.mu.Lock()
	w, ok := r.active[meetingID]
	r.mu.Unlock()
	if !ok {
		return false
	}
	w.signalStop()
	return true
}

// RecoverOrphans fails meetings left running by an unclean shutdown.
// Returns the recovered count.
func (r *Runner) RecoverOrphans(ctx context.Context) (int, error) {
	recovered, err := r.meetings.ResetStaleRunning(ctx, r.IsRunning)
	if err != nil {
		return 0, fmt.Errorf("startup recovery sweep failed: %w", err)
	}
	if recovered > 0 {
		slog.Warn("Startup recovery sweep reset stale meetings", "recovered", recovered)
	}
	return recovered, nil
}

// Shutdown signals all workers and waits for them to persist their
// current turn, bounded by the configured timeout.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	for _, w := range r.active {
		w.signalStop()
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out with workers still live: %w", ctx.Err())
	case <-time.After(r.cfg.ShutdownTimeout):
		return errors.New("shutdown timed out with workers still live")
	}
}

func (r *Runner) remove(meetingID string) {
	r.mu.Lock()
	delete(r.active, meetingID)
	r.mu.Unlock()
}
