package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

type testConfig struct {
	Var1 string `envconfig:"VAR1"`
	Var2 string `envconfig:"VAR2"`
}

type durationConfig struct {
	Pause time.Duration `envconfig:"TEST_PAUSE" default:"1s"`
	Hours []int         `envconfig:"TEST_HOURS" default:"8,14,18"`
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("VAR1=from_file\nVAR2=from_file\n"), 0644); err != nil {
		t.Fatalf("не удалось создать .env: %v", err)
	}
	os.Unsetenv("VAR1")
	defer os.Unsetenv("VAR1")
	t.Setenv("VAR2", "from_env")

	var cfg testConfig
	if err := LoadEnv(path, zaptest.NewLogger(t), &cfg); err != nil {
		t.Fatalf("LoadEnv вернул ошибку: %v", err)
	}
	if cfg.Var1 != "from_file" {
		t.Errorf("ожидали Var1=from_file, получили %s", cfg.Var1)
	}
	if cfg.Var2 != "from_env" {
		t.Errorf("окружение должно иметь приоритет, получили %s", cfg.Var2)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv("VAR1", "only_env")

	var cfg testConfig
	err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"), zaptest.NewLogger(t), &cfg)
	if err != nil {
		t.Fatalf("отсутствующий .env не должен быть ошибкой: %v", err)
	}
	if cfg.Var1 != "only_env" {
		t.Errorf("ожидали Var1=only_env, получили %s", cfg.Var1)
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	var cfg durationConfig
	if err := LoadEnv("", zaptest.NewLogger(t), &cfg); err != nil {
		t.Fatalf("LoadEnv вернул ошибку: %v", err)
	}
	if cfg.Pause != time.Second || len(cfg.Hours) != 3 || cfg.Hours[1] != 14 {
		t.Errorf("значения по умолчанию не применились: %+v", cfg)
	}
}

func TestLoadEnv_BadValue(t *testing.T) {
	t.Setenv("TEST_PAUSE", "soon")

	var cfg durationConfig
	if err := LoadEnv("", zaptest.NewLogger(t), &cfg); err == nil {
		t.Error("ожидали ошибку разбора длительности")
	}
}
