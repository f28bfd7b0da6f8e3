// Package scheduler runs periodic maintenance on a cron spec.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper is one maintenance pass; it reports how many rows it changed.
type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	spec    string
	sweeper Sweeper
	logger  *log.Logger
	timeout time.Duration

	// boot tracks the pass started by Start outside the cron loop.
	boot sync.WaitGroup
}

func New(spec string, sweeper Sweeper, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cron.PrintfLogger(logger))),
		spec:    spec,
		sweeper: sweeper,
		logger:  logger,
		timeout: time.Minute,
	}
}

// Start registers the sweep and starts the cron loop. One pass also runs
// immediately so jobs that expired while the server was down close at boot.
// The boot pass and the scheduled ones share a SkipIfStillRunning wrapper,
// so they never overlap.
func (s *Scheduler) Start(ctx context.Context) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(s.logger))).
		Then(cron.FuncJob(func() { s.run(ctx) }))

	if _, err := s.cron.AddJob(s.spec, job); err != nil {
		return fmt.Errorf("cron.AddJob: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Scheduler] Cron started spec=%s", s.spec)

	s.boot.Add(1)
	go func() {
		defer s.boot.Done()
		job.Run()
	}()
	return nil
}

// Stop halts the cron loop and waits for every running sweep, the boot pass
// included, to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.boot.Wait()
	s.logger.Printf("[Scheduler] Cron stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.sweeper.Sweep(runCtx); err != nil {
		s.logger.Printf("[Scheduler] Sweep error: %v", err)
	}
}
