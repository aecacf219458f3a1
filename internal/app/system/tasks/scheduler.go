// internal/app/system/tasks/scheduler.go
package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named unit of periodic work.
type Job struct {
	Name     string
	Interval time.Duration
	// Timeout bounds a single run. Zero means the interval.
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// Scheduler runs each registered Job on its own ticker until Stop.
type Scheduler struct {
	log  *zap.Logger
	jobs []Job

	stopCh  chan struct{}
	wg      sync.WaitGroup
	started bool
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{log: logger, stopCh: make(chan struct{})}
}

// Add registers j. Jobs added after Start are ignored.
func (s *Scheduler) Add(j Job) {
	if s.started || j.Interval <= 0 || j.Run == nil {
		return
	}
	s.jobs = append(s.jobs, j)
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int { return len(s.jobs) }

// Start launches one goroutine per job.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
		s.log.Info("background job started",
			zap.String("job", j.Name),
			zap.Duration("interval", j.Interval))
	}
}

// Stop signals every job and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	close(s.stopCh)
	s.wg.Wait()
	s.started = false
	s.log.Info("background jobs stopped", zap.Int("jobs", len(s.jobs)))
}

func (s *Scheduler) loop(j Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.runOnce(j)
		}
	}
}

func (s *Scheduler) runOnce(j Job) {
	timeout := j.Timeout
	if timeout <= 0 {
		timeout = j.Interval
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop cancels a run that is still in flight.
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := j.Run(ctx); err != nil {
		s.log.Error("background job failed", zap.String("job", j.Name), zap.Error(err))
	}
}
