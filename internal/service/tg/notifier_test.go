package tg

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newTestBot(t *testing.T, sent *[]string) *tgbotapi.BotAPI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"reminder","username":"reminder_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			*sent = append(*sent, r.PostForm.Get("chat_id")+":"+r.PostForm.Get("text"))
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"group"},"text":"ok"}}`))
		default:
			_, _ = w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	bot, err := tgbotapi.NewBotAPIWithClient("token", srv.URL+"/bot%s/%s", srv.Client())
	if err != nil {
		t.Fatalf("NewBotAPIWithClient: %v", err)
	}
	return bot
}

func TestNotifier_Notify(t *testing.T) {
	var sent []string
	n, err := newNotifier(newTestBot(t, &sent), 42)
	if err != nil {
		t.Fatalf("newNotifier: %v", err)
	}
	if err := n.Notify("owner: 2 payment alert(s) sent"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(sent) != 1 || sent[0] != "42:owner: 2 payment alert(s) sent" {
		t.Errorf("sent = %v", sent)
	}
}

func TestNewNotifier_RequiresChat(t *testing.T) {
	var sent []string
	if _, err := newNotifier(newTestBot(t, &sent), 0); !errors.Is(err, ErrNoChat) {
		t.Errorf("err = %v, want ErrNoChat", err)
	}
}
