package tg

import (
	"errors"
	"fmt"

	"debt_reminder/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrNoChat = errors.New("admin chat id is not set")

// Notifier шлет сводки планировщика в чат администраторов
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(cfg config.TelegramConfig) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	return newNotifier(bot, cfg.AdminChatID)
}

func newNotifier(bot *tgbotapi.BotAPI, chatID int64) (*Notifier, error) {
	if chatID == 0 {
		return nil, ErrNoChat
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) Notify(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("error sending chat message: %w", err)
	}
	return nil
}
