// Package scheduler runs the background jobs of the service: the outbox
// relay and the optional settlement keeper.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
)

// Job is a unit of periodic work.
type Job interface {
	Name() string
	Schedule() gocron.JobDefinition
	Execute(ctx context.Context)
}

// Manager owns a gocron scheduler and the context jobs run with.
type Manager struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
}

func NewManager(logger *slog.Logger) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Manager{scheduler: s, logger: logger}, nil
}

// Register adds job. Runs never overlap: a run that is still busy when the
// next one is due skips that tick.
func (m *Manager) Register(ctx context.Context, job Job) error {
	_, err := m.scheduler.NewJob(
		job.Schedule(),
		gocron.NewTask(func() { job.Execute(ctx) }),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register job %s: %w", job.Name(), err)
	}
	m.logger.Info("job registered", slog.String("job", job.Name()))
	return nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to return.
func (m *Manager) Run(ctx context.Context) error {
	m.scheduler.Start()
	m.logger.Info("scheduler started", slog.Int("jobs", len(m.scheduler.Jobs())))
	<-ctx.Done()
	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	m.logger.Info("scheduler stopped")
	return nil
}
