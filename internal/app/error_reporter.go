package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"
)

const lastErrorKey = "last_error"

// ErrorReporter logs failures and relays them to the chat, skipping a message
// identical to the last one sent until Reset or the renotify interval elapses.
type ErrorReporter struct {
	notifier MessageNotifier
	sent     *ttlcache.Cache[string, string]
	logger   *logrus.Entry
}

// NewErrorReporter creates a reporter; renotify == 0 suppresses repeats indefinitely.
func NewErrorReporter(notifier MessageNotifier, renotify time.Duration, logger *logrus.Entry) *ErrorReporter {
	return &ErrorReporter{
		notifier: notifier,
		sent: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](renotify),
			ttlcache.WithDisableTouchOnHit[string, string](),
		),
		logger: logger,
	}
}

// Report logs err and notifies the chat unless the same text was just sent.
func (r *ErrorReporter) Report(ctx context.Context, err error) {
	r.logger.WithError(err).Error("Homework status check failed")

	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	if item := r.sent.Get(lastErrorKey); item != nil && item.Value() == message {
		r.logger.WithField("message", message).Debug("Duplicate error notification suppressed")
		return
	}

	r.notifier.Notify(ctx, message)
	r.sent.Set(lastErrorKey, message, ttlcache.DefaultTTL)
}

// Reset forgets the last reported error.
func (r *ErrorReporter) Reset() {
	r.sent.Delete(lastErrorKey)
}
