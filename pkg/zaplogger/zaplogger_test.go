package zaplogger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		logger, err := New(tt.level)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q) expected error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%q): %v", tt.level, err)
		}
		if !logger.Core().Enabled(tt.enabled) {
			t.Errorf("New(%q): level %s disabled", tt.level, tt.enabled)
		}
		if logger.Core().Enabled(tt.enabled - 1) {
			t.Errorf("New(%q): level %s should be disabled", tt.level, tt.enabled-1)
		}
	}
}
