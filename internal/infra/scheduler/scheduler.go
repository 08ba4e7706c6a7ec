package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one poll iteration.
type Job func(ctx context.Context) error

// PollScheduler runs a job immediately and then again whenever the schedule
// fires after the previous run finished. Runs never overlap.
type PollScheduler struct {
	job      Job
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
}

// ParseSchedule accepts standard cron expressions and descriptors such as "@every 10m".
func ParseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return schedule, nil
}

func NewPollScheduler(job Job, schedule cron.Schedule, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		job:      job,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (s *PollScheduler) Run(ctx context.Context) {
	s.logger.Info("Starting homework status poller...")

	for {
		if err := s.job(ctx); err != nil {
			s.logger.WithError(err).Warn("Poll iteration failed, retrying on the next tick")
		}

		next := s.schedule.Next(s.now())
		wait := time.Until(next)
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for the next poll")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Homework status poller stopped.")
			return
		case <-timer.C:
		}
	}
}
