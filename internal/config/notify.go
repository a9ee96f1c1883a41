package config

import "fmt"

// NotifyConfig holds organizer notification configuration.
type NotifyConfig struct {
	// TelegramToken is the bot token used to post submissions to organizers.
	TelegramToken string
	// TelegramChatID is the chat receiving submission notifications.
	TelegramChatID int64
}

// LoadNotifyConfigFromEnv loads notification configuration from environment variables.
func LoadNotifyConfigFromEnv() NotifyConfig {
	return NotifyConfig{
		TelegramToken:  GetEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: GetEnvInt64("TELEGRAM_CHAT_ID", 0),
	}
}

// TelegramEnabled reports whether Telegram notifications are configured.
func (c NotifyConfig) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// Validate validates notification configuration.
func (c NotifyConfig) Validate() error {
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	return nil
}
