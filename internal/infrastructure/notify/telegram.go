// Package notify contains outbound notification adapters. Delivery is best
// effort everywhere: errors are reported to the caller for logging and
// nothing more.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// TelegramNotifier sends HTML-formatted messages to a fixed chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger zerolog.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(_ context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// NopNotifier is used when Telegram credentials are not configured.
type NopNotifier struct {
	logger zerolog.Logger
}

func NewNopNotifier(logger zerolog.Logger) *NopNotifier {
	logger.Warn().Msg("telegram bot token or chat id not configured, notifications disabled")
	return &NopNotifier{logger: logger}
}

func (n *NopNotifier) Notify(_ context.Context, text string) error {
	n.logger.Debug().Str("text", text).Msg("notification dropped (notifier disabled)")
	return nil
}
