package masker

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type AuthPart struct {
	Secret string `masked:"true"`
	TTL    time.Duration
}

type ChatPart struct {
	Token  string `masked:"true"`
	ChatID int64  `masked:"true"`
}

type AppConfig struct {
	AuthPart
	Chat    ChatPart
	Hours   []int
	Addr    string
	private string
}

func TestMaskSensitiveData(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"secret", "s****t"},
		{"ключ", "к****ч"},
		{"ab", "****"},
		{"a", "****"},
		{"", "<unset>"},
	}
	for _, tt := range tests {
		got := maskSensitiveData(tt.in)
		if got != tt.want {
			t.Errorf("maskSensitiveData(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskStructFields(t *testing.T) {
	cfg := AppConfig{
		AuthPart: AuthPart{Secret: "jwtsecret", TTL: 24 * time.Hour},
		Chat:     ChatPart{Token: "123:abc", ChatID: 42},
		Hours:    []int{8, 14},
		Addr:     ":8080",
		private:  "hidden",
	}
	got := maskStructFields(reflect.ValueOf(cfg), reflect.TypeOf(cfg))

	auth, ok := got["AuthPart"].(map[string]interface{})
	if !ok {
		t.Fatal("embedded struct not mapped")
	}
	if auth["Secret"] != "j****t" {
		t.Errorf("Secret = %v", auth["Secret"])
	}
	if auth["TTL"] != "24h0m0s" {
		t.Errorf("TTL = %v", auth["TTL"])
	}

	chat := got["Chat"].(map[string]interface{})
	if chat["Token"] != "1****c" {
		t.Errorf("Token = %v", chat["Token"])
	}
	if chat["ChatID"] != "****" {
		t.Errorf("ChatID = %v", chat["ChatID"])
	}
	if got["Addr"] != ":8080" {
		t.Errorf("Addr = %v", got["Addr"])
	}
	if hours, ok := got["Hours"].([]int); !ok || len(hours) != 2 {
		t.Errorf("Hours = %v", got["Hours"])
	}
	if _, ok := got["private"]; ok {
		t.Error("unexported field must be skipped")
	}
}

func TestLogConfigs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := &AppConfig{AuthPart: AuthPart{Secret: "supersecret"}}

	if err := LogConfigs(zap.New(core), cfg); err != nil {
		t.Fatalf("LogConfigs returned error: %v", err)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if _, ok := fields["AppConfig"]; !ok {
		t.Errorf("config not logged under its type name: %v", fields)
	}
}

func TestLogConfigs_NotPointer(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	if err := LogConfigs(zap.New(core), AppConfig{}); !errors.Is(err, ErrConfigNotPointer) {
		t.Errorf("err = %v, want ErrConfigNotPointer", err)
	}
	s := "x"
	if err := LogConfigs(zap.New(core), &s); !errors.Is(err, ErrConfigNotPointer) {
		t.Errorf("pointer to non-struct: err = %v", err)
	}
}
