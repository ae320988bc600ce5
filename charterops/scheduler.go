package charterops

import (
	"context"
	"sync"
	"time"

	"github.com/arrowlimo/arrow-limo-sub005/core"
	"github.com/arrowlimo/arrow-limo-sub005/shell"
)

const (
	defaultHOSRefreshInterval = 15 * time.Minute
	defaultReconcileInterval  = 5 * time.Minute

	// schedulerStopTimeout bounds how long Stop waits for running tasks.
	schedulerStopTimeout = 5 * time.Second
)

// Scheduler drives the recurring back-office work on fixed intervals, going
// through the same handlers the interactive path uses. It refreshes the
// cached duty summary for every driver on the roster and applies settled
// bank postings as payments.
type Scheduler struct {
	service *Service
	feed    BankFeed
	logger  shell.Logger

	hosRefreshEvery time.Duration
	reconcileEvery  time.Duration

	cancel   context.CancelFunc
	stopChan chan struct{}
	wg       sync.WaitGroup

	mu             sync.Mutex
	lastReconciled time.Time
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithHOSRefreshInterval overrides how often duty summaries are refreshed.
func WithHOSRefreshInterval(interval time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.hosRefreshEvery = interval
	}
}

// WithReconcileInterval overrides how often the bank feed is reconciled.
func WithReconcileInterval(interval time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.reconcileEvery = interval
	}
}

// WithSchedulerLogger sets the logger for per-run outcomes.
func WithSchedulerLogger(logger shell.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a Scheduler bound to the service and bank feed.
func NewScheduler(service *Service, feed BankFeed, opts ...SchedulerOption) *Scheduler {
	scheduler := &Scheduler{
		service:         service,
		feed:            feed,
		hosRefreshEvery: defaultHOSRefreshInterval,
		reconcileEvery:  defaultReconcileInterval,
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	return scheduler
}

// Start launches the interval tasks. They run until Stop is called or the
// given context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.stopChan = make(chan struct{})

	s.wg.Add(2)
	go s.runHOSRefresh(ctx)
	go s.runReconciliation(ctx)
}

// Stop shuts the interval tasks down and waits for them to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}

	close(s.stopChan)
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(schedulerStopTimeout):
		s.logWarn("scheduler stop timed out waiting for running tasks")
	}
}

func (s *Scheduler) runHOSRefresh(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.hosRefreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshDutySummaries(ctx)
		}
	}
}

// refreshDutySummaries re-projects the rolling duty summary for every driver
// on the roster. On a snapshot capable journal the query handler persists the
// refreshed projection, so the next interactive read starts warm. A failing
// driver is logged and skipped; the rest of the roster still refreshes.
func (s *Scheduler) refreshDutySummaries(ctx context.Context) {
	drivers, err := s.service.directory.ActiveDrivers(ctx)
	if err != nil {
		s.logError("duty summary refresh: roster lookup failed", "error", err)

		return
	}

	windowEnd := core.ToDutyDate(s.service.clock())

	refreshed := 0

	for _, driverID := range drivers {
		if ctx.Err() != nil {
			return
		}

		if _, err := s.service.GetHOSSummary(ctx, driverID, windowEnd); err != nil {
			s.logError("duty summary refresh failed", "driver_id", driverID, "error", err)

			continue
		}

		refreshed++
	}

	s.logInfo("duty summaries refreshed", "drivers", refreshed, "window_end", windowEnd)
}

func (s *Scheduler) runReconciliation(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.reconcileEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reconcileOnce(ctx)
		}
	}
}

// reconcileOnce applies postings settled since the last successful run. The
// cursor only advances when the run completes, so a failed window is fetched
// again on the next tick; re-applying a posting is a no-op.
func (s *Scheduler) reconcileOnce(ctx context.Context) {
	s.mu.Lock()
	since := s.lastReconciled
	s.mu.Unlock()

	runStarted := s.service.clock()

	report, err := s.service.ReconcileBankFeed(ctx, s.feed, since)
	if err != nil {
		s.logError("bank feed reconciliation failed", "error", err)

		return
	}

	s.mu.Lock()
	s.lastReconciled = runStarted
	s.mu.Unlock()

	s.logInfo("bank feed reconciled",
		"applied", report.Applied,
		"already_applied", report.AlreadyApplied,
		"skipped", report.Skipped)
}

func (s *Scheduler) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Scheduler) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Scheduler) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
