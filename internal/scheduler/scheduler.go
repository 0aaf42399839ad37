// Package scheduler runs the periodic weather re-fetch used by watch mode.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
)

// Scheduler triggers a job on a fixed interval. The job gets a context
// bounded by the weather fetch timeout; failures are logged and the next
// tick proceeds normally, there is no retry in between.
type Scheduler struct {
	scheduler *gocron.Scheduler
	interval  time.Duration
	job       func(ctx context.Context)
}

func New(interval time.Duration, job func(ctx context.Context)) *Scheduler {
	if interval <= 0 {
		interval = constants.WeatherWatchInterval
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
		job:       job,
	}
}

// Start schedules the job and starts the underlying scheduler. The first
// run happens immediately, then every interval.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		logger.Debug("running scheduled weather fetch")
		ctx, cancel := context.WithTimeout(context.Background(), constants.WeatherFetchTimeout)
		defer cancel()
		s.job(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
