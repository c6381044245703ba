package telexide

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is a periodic task executed by the bot's scheduler. Run receives
// a Context with API and Data access; its Raw field is nil.
type Job interface {
	Name() string
	Schedule() string
	Run(*Context) error
}

// Scheduler manages periodic job execution using cron expressions.
// Each job is protected by a per-job mutex so one slow run never
// overlaps the next tick of the same job.
type Scheduler struct {
	mu         sync.Mutex
	cron       *cron.Cron
	jobs       []Job
	names      map[string]struct{}
	locks      map[string]*sync.Mutex
	logger     *slog.Logger
	newContext func(context.Context) *Context
	cancel     context.CancelFunc
}

// NewScheduler creates a scheduler. Jobs must be registered before Start().
func NewScheduler(logger *slog.Logger, newContext func(context.Context) *Context) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		names:      make(map[string]struct{}),
		locks:      make(map[string]*sync.Mutex),
		logger:     logger,
		newContext: newContext,
	}
}

// RegisterJob adds a job to the scheduler. Must be called before Start().
func (s *Scheduler) RegisterJob(j Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := j.Name()
	if _, exists := s.names[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateJob, name)
	}

	s.names[name] = struct{}{}
	s.locks[name] = &sync.Mutex{}
	s.jobs = append(s.jobs, j)
	return nil
}

// Start begins executing registered jobs. Returns an error if any job
// has an invalid schedule expression.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	s.cron = cron.New(cron.WithParser(parser))

	for _, j := range s.jobs {
		job := j
		lock := s.locks[job.Name()]

		_, err := s.cron.AddFunc(job.Schedule(), func() {
			// TryLock is atomic. If the previous tick is still
			// running, skip this one.
			if !lock.TryLock() {
				s.logger.Warn("job still running, skipping tick",
					"job", job.Name(),
				)
				return
			}
			defer lock.Unlock()

			s.logger.Debug("job started", "job", job.Name())
			if err := job.Run(s.newContext(ctx)); err != nil {
				s.logger.Error("job failed",
					"job", job.Name(),
					"error", err,
				)
			} else {
				s.logger.Debug("job completed", "job", job.Name())
			}
		})
		if err != nil {
			cancel()
			return fmt.Errorf("telexide: invalid schedule for job %q: %w", job.Name(), err)
		}
	}

	s.cron.Start()
	return nil
}

// Stop cancels the job context and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
