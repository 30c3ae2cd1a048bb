package reminder

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLimiter_FirstCallDoesNotWait(t *testing.T) {
	l := newLimiter(time.Hour)
	start := time.Now()
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("first call waited %v", d)
	}
}

func TestLimiter_Pause(t *testing.T) {
	const pause = 30 * time.Millisecond
	l := newLimiter(pause)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
	if d := time.Since(start); d < 2*pause {
		t.Errorf("elapsed = %v, want at least %v", d, 2*pause)
	}
}

func TestLimiter_Cancel(t *testing.T) {
	l := newLimiter(time.Hour)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
