// Package scheduler runs the periodic snapshot flush.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotevault/internal/ports"
)

// DefaultInterval is the flush period when none is configured.
const DefaultInterval = 10 * time.Minute

// Config configures a FlushScheduler.
type Config struct {
	Interval time.Duration

	// Timeout bounds one flush round. Defaults to Interval.
	Timeout time.Duration

	Flushers []ports.Flusher
	Logger   *slog.Logger
}

// FlushScheduler writes every store's snapshot on a fixed interval.
// A round still running when the next tick fires makes that tick a no-op.
type FlushScheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	entryID  cron.EntryID
	running  bool
	interval time.Duration
	timeout  time.Duration
	flushers []ports.Flusher
	logger   *slog.Logger
}

// New returns a stopped scheduler.
func New(cfg Config) *FlushScheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "scheduler.FlushScheduler"))

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = interval
	}

	cl := cronLogger{logger: logger}

	return &FlushScheduler{
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		interval: interval,
		timeout:  timeout,
		flushers: cfg.Flushers,
		logger:   logger,
	}
}

// Start schedules the flush. Calling Start on a running scheduler is a no-op.
func (s *FlushScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	spec := "@every " + s.interval.String()

	id, err := s.cron.AddFunc(spec, s.tick)
	if err != nil {
		return fmt.Errorf("scheduling flush %q: %w", spec, err)
	}

	s.entryID = id
	s.cron.Start()
	s.running = true

	s.logger.Info("flush scheduler started",
		slog.Duration("interval", s.interval),
		slog.Int("stores", len(s.flushers)))

	return nil
}

// Stop stops scheduling and waits for a running round, or for ctx to end.
func (s *FlushScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()
		return nil
	}

	s.running = false
	s.cron.Remove(s.entryID)
	done := s.cron.Stop()
	s.mu.Unlock()

	select {
	case <-done.Done():
		s.logger.Info("flush scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for flush to finish: %w", ctx.Err())
	}
}

// NextRun returns when the next flush fires, or the zero time when stopped.
func (s *FlushScheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return time.Time{}
	}

	return s.cron.Entry(s.entryID).Next
}

// RunNow flushes every store immediately.
func (s *FlushScheduler) RunNow(ctx context.Context) error {
	return FlushAll(ctx, s.flushers...)
}

func (s *FlushScheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()

	if err := s.RunNow(ctx); err != nil {
		s.logger.Warn("scheduled flush failed", slog.Any("error", err))
		return
	}

	s.logger.Debug("scheduled flush complete", slog.Duration("duration", time.Since(start)))
}

// FlushAll flushes every store concurrently. One store failing does not stop
// the others; all failures are returned joined.
func FlushAll(ctx context.Context, flushers ...ports.Flusher) error {
	var g errgroup.Group

	errs := make([]error, len(flushers))

	for i, f := range flushers {
		g.Go(func() error {
			if err := f.Flush(ctx); err != nil {
				errs[i] = fmt.Errorf("flushing %s: %w", f.Name(), err)
			}

			return nil
		})
	}

	_ = g.Wait()

	return errors.Join(errs...)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
