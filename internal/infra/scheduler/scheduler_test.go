package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type delaySchedule time.Duration

func (d delaySchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

func TestParseSchedule(t *testing.T) {
	schedule, err := ParseSchedule("@every 10m")
	if err != nil {
		t.Fatalf("ParseSchedule error: %v", err)
	}
	every, ok := schedule.(cron.ConstantDelaySchedule)
	if !ok {
		t.Fatalf("schedule is %T, want cron.ConstantDelaySchedule", schedule)
	}
	if every.Delay != 600*time.Second {
		t.Fatalf("Delay = %v, want 600s", every.Delay)
	}

	if _, err := ParseSchedule("*/10 * * * *"); err != nil {
		t.Fatalf("ParseSchedule cron expression error: %v", err)
	}
	if _, err := ParseSchedule("every ten minutes"); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
}

func TestRunRepeatsSequentiallyUntilCancelled(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	running := false
	job := func(ctx context.Context) error {
		if running {
			t.Error("job runs overlapped")
		}
		running = true
		defer func() { running = false }()

		runs++
		if runs == 3 {
			cancel()
		}
		if runs%2 == 1 {
			return errors.New("temporary failure")
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		NewPollScheduler(job, delaySchedule(time.Millisecond), logrus.NewEntry(log)).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
	if runs != 3 {
		t.Fatalf("job ran %d times, want 3", runs)
	}
}

func TestRunStopsDuringSleep(t *testing.T) {
	log, hook := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	job := func(ctx context.Context) error {
		close(started)
		return nil
	}

	done := make(chan struct{})
	go func() {
		NewPollScheduler(job, delaySchedule(time.Hour), logrus.NewEntry(log)).Run(ctx)
		close(done)
	}()

	<-started
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler kept sleeping after cancellation")
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "Homework status poller stopped." {
		t.Fatalf("unexpected last log entry: %+v", hook.LastEntry())
	}
}
