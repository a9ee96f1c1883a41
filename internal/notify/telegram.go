package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/config"
	"github.com/festy23/innov8x/pkg/retry"
)

// Sender is the subset of the bot API used to post messages.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts events to an organizers' chat.
type TelegramNotifier struct {
	sender Sender
	chatID int64
	retry  retry.Config
	logger *zap.SugaredLogger
}

// NewTelegramNotifier creates a notifier that sends through sender.
func NewTelegramNotifier(sender Sender, chatID int64, logger *zap.SugaredLogger) *TelegramNotifier {
	cfg := retry.NotifierConfig()
	cfg.Retryable = isRetryableTelegramError
	cfg.WaitHint = telegramRetryAfter
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("telegram send failed, retrying", "attempt", attempt, "delay", delay, "error", err)
	}
	return &TelegramNotifier{
		sender: sender,
		chatID: chatID,
		retry:  cfg,
		logger: logger,
	}
}

// NewTelegramFromConfig authenticates a bot with the Telegram API.
func NewTelegramFromConfig(cfg config.NotifyConfig, logger *zap.SugaredLogger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	logger.Infow("telegram notifications enabled", "bot", bot.Self.UserName, "chat_id", cfg.TelegramChatID)

	return NewTelegramNotifier(bot, cfg.TelegramChatID, logger), nil
}

// Notify posts the event text, retrying transient API failures.
func (n *TelegramNotifier) Notify(ctx context.Context, event Event) error {
	msg := tgbotapi.NewMessage(n.chatID, event.Text())
	msg.DisableWebPagePreview = true

	err := retry.Do(ctx, n.retry, func() error {
		_, err := n.sender.Send(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("telegram notify %s %s: %w", event.Kind, event.ReferenceID, err)
	}

	return nil
}

// isRetryableTelegramError retries rate limiting and server side failures
// reported by the Bot API, and transport errors matching the notifier patterns.
func isRetryableTelegramError(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return retry.MatchesAny(err, retry.DefaultNotifierRetryableErrors())
}

// telegramRetryAfter honours the retry_after parameter of a flood-control reply.
func telegramRetryAfter(err error) (time.Duration, bool) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return time.Duration(apiErr.RetryAfter) * time.Second, true
	}
	return 0, false
}
