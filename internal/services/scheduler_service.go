package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
	"nelo-tasks.com/nelo-tasks/internal/notify"
)

// DefaultNotifyPeriod matches the original reminder cadence.
const DefaultNotifyPeriod = 20 * time.Minute

// PendingSource yields the live pending subset at the moment of the call.
type PendingSource interface {
	PendingTasks(ctx context.Context) []model.Task
}

// SchedulerConfig carries the inputs a running scheduler is armed against.
// Changing any of them means Stop followed by Start; the timer never keeps
// firing against stale inputs.
type SchedulerConfig struct {
	Recipient   string
	Period      time.Duration
	SendTimeout time.Duration
}

// SchedulerService drives the recurring reminder cycle. It is either Idle or
// Running: Start always tears down any prior timer before arming a new one,
// runs one immediate cycle, then fires on a fixed period. Stop cancels the
// timer deterministically and discards any in-flight result that arrives
// after teardown.
type SchedulerService struct {
	// lifecycle serializes Start/Stop transitions so teardown plus re-arm is
	// one atomic step; mu guards the state fields and is never held across a
	// wg.Wait.
	lifecycle sync.Mutex
	mu        sync.Mutex
	source    PendingSource
	sender    notify.Sender
	logger    zerolog.Logger

	running    bool
	generation uint64
	stop       chan struct{}
	wg         sync.WaitGroup

	cfg        SchedulerConfig
	lastStatus *model.NotificationStatus
	lastSentAt time.Time
}

func NewSchedulerService(source PendingSource, sender notify.Sender, logger zerolog.Logger) *SchedulerService {
	return &SchedulerService{
		source: source,
		sender: sender,
		logger: logger,
	}
}

// Start arms the scheduler against the given config. A scheduler that is
// already running is torn down first so no timer outlives its inputs.
func (s *SchedulerService) Start(cfg SchedulerConfig) error {
	if cfg.Recipient == "" {
		return apperrors.NewValidation("recipient is required")
	}
	if cfg.Period <= 0 {
		cfg.Period = DefaultNotifyPeriod
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.teardown()

	s.mu.Lock()
	s.running = true
	s.generation++
	s.cfg = cfg
	s.stop = make(chan struct{})

	gen := s.generation
	stopCh := s.stop
	s.wg.Add(1)
	s.mu.Unlock()

	go s.loop(gen, cfg, stopCh)

	s.logger.Info().
		Str("recipient", cfg.Recipient).
		Dur("period", cfg.Period).
		Msg("notification scheduler started")
	return nil
}

// Stop transitions the scheduler to Idle. It blocks until the timer loop has
// exited, so no further status records are produced after it returns.
func (s *SchedulerService) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.teardown()
}

// teardown cancels a running loop and waits for it to exit. Callers must
// hold s.lifecycle, which guarantees at most one loop exists to wait on.
func (s *SchedulerService) teardown() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.generation++
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info().Msg("notification scheduler stopped")
}

// Running reports whether a timer is currently armed.
func (s *SchedulerService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LastStatus returns a copy of the most recent cycle's record, or nil before
// the first cycle completes.
func (s *SchedulerService) LastStatus() *model.NotificationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastStatus == nil {
		return nil
	}
	out := *s.lastStatus
	return &out
}

// LastSentAt returns when the last cycle's result arrived.
func (s *SchedulerService) LastSentAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSentAt
}

// Period returns the fixed cycle period the scheduler is armed with. A
// consumer computes "time until next cycle" from this and LastSentAt; the
// scheduler does not recompute it continuously.
func (s *SchedulerService) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Period
}

func (s *SchedulerService) loop(gen uint64, cfg SchedulerConfig, stopCh <-chan struct{}) {
	defer s.wg.Done()

	s.runCycle(gen, cfg)

	ticker := time.NewTicker(cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runCycle(gen, cfg)
		case <-stopCh:
			return
		}
	}
}

// runCycle re-fetches the pending subset at fire time, invokes the sender if
// there is anything to send, and records the outcome. An empty subset still
// reports a successful cycle with a zero count.
func (s *SchedulerService) runCycle(gen uint64, cfg SchedulerConfig) {
	pending := s.source.PendingTasks(context.Background())

	var result notify.Result
	if len(pending) == 0 {
		result = notify.Result{
			Success:   true,
			Message:   "No pending tasks to send",
			TaskCount: 0,
		}
	} else {
		ctx := context.Background()
		if cfg.SendTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.SendTimeout)
			defer cancel()
		}
		result = s.sender.Send(ctx, pending, cfg.Recipient)
	}

	s.record(gen, result)
}

// record stores the status record unless the scheduler was torn down (or
// re-armed) while the send was in flight, in which case the stale result is
// discarded.
func (s *SchedulerService) record(gen uint64, result notify.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || gen != s.generation {
		s.logger.Debug().Msg("discarding notification result from torn-down cycle")
		return
	}

	now := time.Now().UTC()
	s.lastStatus = &model.NotificationStatus{
		Success:   result.Success,
		Message:   result.Message,
		TaskCount: result.TaskCount,
		SentAt:    now,
		Error:     result.Error,
	}
	s.lastSentAt = now

	s.logger.Info().
		Bool("success", result.Success).
		Int("task_count", result.TaskCount).
		Msg("notification cycle completed")
}
