// internal/app/notifier.go
package app

import (
	"context"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// MessageNotifier delivers a text to the configured chat. Delivery is best-effort.
type MessageNotifier interface {
	Notify(ctx context.Context, message string)
}

// Notifier sends messages to a single chat through the Telegram client.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	limiter        *rate.Limiter
	logger         *logrus.Entry
}

// NewNotifier creates a notifier; ratePerSec <= 0 disables rate limiting.
func NewNotifier(tc domainTelegram.Client, chatID string, ratePerSec int, logger *logrus.Entry) *Notifier {
	limit, burst := rate.Inf, 1
	if ratePerSec > 0 {
		limit, burst = rate.Limit(ratePerSec), ratePerSec
	}
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		limiter:        rate.NewLimiter(limit, burst),
		logger:         logger,
	}
}

// Notify never fails: delivery errors are logged and dropped.
func (n *Notifier) Notify(ctx context.Context, message string) {
	logCtx := n.logger.WithField("chat_id", n.chatID)

	if err := n.limiter.Wait(ctx); err != nil {
		logCtx.WithError(err).Error("Message dropped while waiting for the rate limiter")
		return
	}

	if err := n.telegramClient.SendMessage(n.chatID, message, nil); err != nil {
		logCtx.WithError(err).Errorf("Error while sending message: %s", message)
		return
	}
	logCtx.Infof("Message sent successfully: %s", message)
}
