package reminder

import (
	"context"
	"sync"
	"time"
)

// limiter выдерживает паузу между обращениями к провайдеру
type limiter struct {
	mu       sync.Mutex
	pause    time.Duration
	lastCall time.Time
}

func newLimiter(pause time.Duration) *limiter {
	return &limiter{pause: pause}
}

// Wait ждет окончания паузы или отмены контекста
func (l *limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if d := l.pause - time.Since(l.lastCall); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	l.lastCall = time.Now()
	return nil
}
