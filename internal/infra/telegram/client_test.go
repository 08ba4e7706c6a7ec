package telegram

import (
	"errors"
	"testing"

	"gopkg.in/telebot.v3"
)

type fakeSender struct {
	to   string
	what interface{}
	opts []interface{}
	err  error
}

func (f *fakeSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	f.to = to.Recipient()
	f.what = what
	f.opts = opts
	return &telebot.Message{}, f.err
}

func TestSendMessageUsesChatIDVerbatim(t *testing.T) {
	for _, chatID := range []string{"123456789", "-1001234567890", "@homework_channel"} {
		fs := &fakeSender{}
		adapter := &TelebotAdapter{bot: fs}

		if err := adapter.SendMessage(chatID, "hello", nil); err != nil {
			t.Fatalf("SendMessage(%q) error: %v", chatID, err)
		}
		if fs.to != chatID {
			t.Fatalf("recipient = %q, want %q", fs.to, chatID)
		}
		if fs.what != "hello" {
			t.Fatalf("text = %v", fs.what)
		}
		if len(fs.opts) != 1 {
			t.Fatalf("expected default send options, got %v", fs.opts)
		}
	}
}

func TestSendMessagePropagatesError(t *testing.T) {
	want := errors.New("chat not found")
	adapter := &TelebotAdapter{bot: &fakeSender{err: want}}

	if err := adapter.SendMessage("1", "hello", nil); !errors.Is(err, want) {
		t.Fatalf("SendMessage error = %v, want %v", err, want)
	}
}

func TestNewBotOffline(t *testing.T) {
	bot, err := NewBot("123:abc", true)
	if err != nil {
		t.Fatalf("NewBot error: %v", err)
	}
	if bot.Token != "123:abc" {
		t.Fatalf("Token = %q", bot.Token)
	}
}
