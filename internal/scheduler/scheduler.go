// Package scheduler runs the export pipeline on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/formscribe/formscribe/pkg/orchestrator"
)

// Scheduler wraps a cron instance around one orchestrator and one form
// identifier. Each tick performs a full fetch-and-export run.
type Scheduler struct {
	orch   *orchestrator.Orchestrator
	formID string
	spec   string
	logger *slog.Logger

	cron    *cron.Cron
	entryID cron.EntryID

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New constructs a Scheduler. A nil logger falls back to slog.Default.
func New(orch *orchestrator.Orchestrator, formID, spec string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		orch:   orch,
		formID: formID,
		spec:   spec,
		logger: logger,
		cron:   cron.New(),
	}
}

// ValidateSpec reports whether spec is a valid standard cron expression.
func ValidateSpec(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("scheduler: invalid cron spec %q: %w", spec, err)
	}
	return nil
}

// Start begins scheduled runs. Calling Start on a running scheduler is a
// no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if err := ValidateSpec(s.spec); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	entryID, err := s.cron.AddFunc(s.spec, func() {
		s.runOnce(runCtx)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("scheduler: add job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started", "spec", s.spec, "form_id", s.formID)
	return nil
}

// Stop halts scheduling and cancels any in-flight run.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Remove(s.entryID)
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	if s.cancel != nil {
		s.cancel()
	}
	s.running = false
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.orch.Run(ctx, orchestrator.Request{FormID: s.formID})
	if err != nil {
		s.logger.Error("scheduled export failed", "form_id", s.formID, "error", err)
	}
	if result == nil {
		return
	}
	for _, artifact := range result.Artifacts {
		if artifact.Stored {
			s.logger.Info("artifact stored", "name", artifact.Name, "format", artifact.Format)
		}
	}
}
