// internal/app/status_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// StatusService polls homework statuses and relays every change to the chat.
// It is not safe for concurrent use; the scheduler calls Poll sequentially.
type StatusService struct {
	source   homework.Source
	notifier MessageNotifier
	reporter *ErrorReporter
	logger   *logrus.Entry

	cursor time.Time
	now    func() time.Time
}

func NewStatusService(
	source homework.Source,
	notifier MessageNotifier,
	reporter *ErrorReporter,
	startFrom time.Time, // lower bound of the first fetch window
	logger *logrus.Entry,
) *StatusService {
	return &StatusService{
		source:   source,
		notifier: notifier,
		reporter: reporter,
		logger:   logger,
		cursor:   startFrom,
		now:      time.Now,
	}
}

// Cursor returns the lower bound of the next fetch window.
func (s *StatusService) Cursor() time.Time {
	return s.cursor
}

// Poll runs one iteration: fetch, validate, notify, advance the cursor.
// On fetch or validation failure the error is reported and the cursor is kept.
func (s *StatusService) Poll(ctx context.Context) error {
	fetchedAt := s.now()
	logCtx := s.logger.WithField("from_date", s.cursor.Unix())
	logCtx.Debug("Polling homework statuses")

	raw, err := s.source.FetchStatuses(ctx, s.cursor)
	if err != nil {
		err = fmt.Errorf("source.FetchStatuses: %w", err)
		s.reporter.Report(ctx, err)
		return err
	}

	resp, err := homework.ParseResponse(raw)
	if err != nil {
		err = fmt.Errorf("homework.ParseResponse: %w", err)
		s.reporter.Report(ctx, err)
		return err
	}

	if len(resp.Homeworks) == 0 {
		logCtx.Debug("No homework status changes")
	}

	failed := 0
	for _, hw := range resp.Homeworks {
		message, err := homework.Translate(hw)
		if err != nil {
			failed++
			s.reporter.Report(ctx, fmt.Errorf("homework.Translate: %w", err))
			continue
		}
		s.notifier.Notify(ctx, message)
	}

	next := resp.CurrentDate
	if next.IsZero() {
		logCtx.Warn("Response has no current_date, advancing cursor to the fetch time")
		next = fetchedAt
	}
	s.cursor = next

	logCtx.WithFields(logrus.Fields{
		"homeworks":      len(resp.Homeworks),
		"skipped":        failed,
		"next_from_date": next.Unix(),
	}).Info("Homework statuses processed")

	if failed == 0 {
		s.reporter.Reset()
	}
	return nil
}
