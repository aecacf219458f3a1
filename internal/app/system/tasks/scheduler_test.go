package tasks_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/tasks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScheduler_RunsJobsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	s := tasks.NewScheduler(zap.NewNop())
	s.Add(tasks.Job{
		Name:     "tick",
		Interval: 5 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	s.Start()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)

	s.Stop()
	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := tasks.NewScheduler(zap.New(core))
	s.Add(tasks.Job{
		Name:     "broken",
		Interval: 5 * time.Millisecond,
		Run:      func(ctx context.Context) error { return errors.New("nope") },
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("background job failed").Len() > 0
	}, time.Second, time.Millisecond)
}

func TestScheduler_IgnoresDisabledJobs(t *testing.T) {
	s := tasks.NewScheduler(zap.NewNop())
	s.Add(tasks.Job{Name: "off", Interval: 0, Run: func(ctx context.Context) error { return nil }})
	s.Add(tasks.Job{Name: "no-run", Interval: time.Second})

	assert.Equal(t, 0, s.Len())
	s.Start()
	s.Stop()
}

func TestScheduler_StopCancelsInFlightRun(t *testing.T) {
	started := make(chan struct{}, 1)
	var canceled atomic.Bool

	s := tasks.NewScheduler(zap.NewNop())
	s.Add(tasks.Job{
		Name:     "slow",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Minute,
		Run: func(ctx context.Context) error {
			select {
			case started <- struct{}{}:
			default:
			}
			<-ctx.Done()
			canceled.Store(true)
			return ctx.Err()
		},
	})
	s.Start()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("job never started")
	}
	s.Stop()

	assert.True(t, canceled.Load())
}
