package notify

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var ErrTelegramNotConfigured = errors.New("telegram token or chat id is missing")

// Telegram posts notifications into a single operators chat.
type Telegram struct {
	bot    *bot.Bot
	chatID int64
	log    *logger.Logger
}

func NewTelegram(cfg config.Telegram, log *logger.Logger, opts ...bot.Option) (*Telegram, error) {
	if cfg.Token == "" || cfg.ChatID == 0 {
		return nil, ErrTelegramNotConfigured
	}

	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)

	b, err := bot.New(cfg.Token, opts...)
	if err != nil {
		return nil, log.Wrap(err, "init telegram bot")
	}

	return &Telegram{
		bot:    b,
		chatID: cfg.ChatID,
		log:    log,
	}, nil
}

func (t *Telegram) Notify(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   text,
	})
	if err != nil {
		return t.log.Wrap(err, "send telegram message")
	}
	return nil
}
