package telegram

import "gopkg.in/telebot.v3"

// Client sends text messages to a Telegram chat. The chat id is kept as the
// configured string so both numeric ids and @channel names work.
type Client interface {
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
