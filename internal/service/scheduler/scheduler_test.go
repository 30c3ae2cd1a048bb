package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"debt_reminder/internal/model"

	"go.uber.org/zap/zaptest"
)

type fakeAdmins struct {
	admins []model.Admin
	err    error
}

func (f *fakeAdmins) CreateAdmin(context.Context, *model.Admin) error { return nil }
func (f *fakeAdmins) GetAdmin(context.Context, uint) (*model.Admin, error) {
	return nil, errors.New("not used")
}
func (f *fakeAdmins) GetAdminByEmail(context.Context, string) (*model.Admin, error) {
	return nil, errors.New("not used")
}
func (f *fakeAdmins) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (f *fakeAdmins) ListAdmins(context.Context) ([]model.Admin, error) {
	return f.admins, f.err
}

type fakeAlerter struct {
	mu    sync.Mutex
	calls []uint
	sent  int
	fail  map[uint]error
	panic map[uint]bool
}

func (f *fakeAlerter) AlertDueClients(_ context.Context, admin model.Admin) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, admin.ID)
	f.mu.Unlock()
	if f.panic[admin.ID] {
		panic("boom")
	}
	if err := f.fail[admin.ID]; err != nil {
		return 0, err
	}
	return f.sent, nil
}

func (f *fakeAlerter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, time.UTC)
}

func TestTick_FiresOncePerTriggerHour(t *testing.T) {
	clk := &clock{t: at(15, 7, 50)}
	alerter := &fakeAlerter{}
	admins := &fakeAdmins{admins: []model.Admin{{ID: 1, Email: "a@example.com"}}}
	s := NewScheduler(admins, alerter, zaptest.NewLogger(t), Config{
		Hours:    []int{8, 14, 18},
		Location: time.UTC,
		Now:      clk.Now,
	})
	ctx := context.Background()

	steps := []struct {
		now  time.Time
		want bool
	}{
		{at(15, 7, 50), false},
		{at(15, 8, 0), true},
		{at(15, 8, 10), false},
		{at(15, 8, 59), false},
		{at(15, 9, 5), false},
		{at(15, 14, 2), true},
		{at(15, 14, 30), false},
		{at(15, 18, 0), true},
		{at(16, 8, 1), true},
		{at(16, 8, 11), false},
	}
	for _, step := range steps {
		clk.Set(step.now)
		if got := s.Tick(ctx); got != step.want {
			t.Errorf("Tick at %s = %v, want %v", step.now.Format(time.RFC3339), got, step.want)
		}
	}
	if got := alerter.count(); got != 4 {
		t.Errorf("alert passes = %d, want 4", got)
	}
}

func TestTick_SingleTriggerHourNextDay(t *testing.T) {
	clk := &clock{t: at(15, 8, 0)}
	alerter := &fakeAlerter{}
	s := NewScheduler(&fakeAdmins{admins: []model.Admin{{ID: 1}}}, alerter, zaptest.NewLogger(t), Config{
		Hours:    []int{8},
		Location: time.UTC,
		Now:      clk.Now,
	})

	if !s.Tick(context.Background()) {
		t.Fatal("first tick at trigger hour should fire")
	}
	clk.Set(at(16, 8, 0))
	if !s.Tick(context.Background()) {
		t.Error("same hour on the next day should fire again")
	}
}

func TestTick_UsesLocation(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	// 00:30 UTC = 08:30 в Маниле
	clk := &clock{t: at(15, 0, 30)}
	alerter := &fakeAlerter{}
	s := NewScheduler(&fakeAdmins{admins: []model.Admin{{ID: 1}}}, alerter, zaptest.NewLogger(t), Config{
		Hours:    []int{8},
		Location: manila,
		Now:      clk.Now,
	})
	if !s.Tick(context.Background()) {
		t.Error("expected tick in configured zone")
	}
}

func TestRunPass_ContinuesAfterFailures(t *testing.T) {
	alerter := &fakeAlerter{
		sent:  2,
		fail:  map[uint]error{1: errors.New("smtp down")},
		panic: map[uint]bool{2: true},
	}
	notifier := &fakeNotifier{err: errors.New("chat unavailable")}
	admins := &fakeAdmins{admins: []model.Admin{
		{ID: 1, Username: "one"},
		{ID: 2, Username: "two"},
		{ID: 3, Username: "three", Email: "three@example.com"},
	}}
	s := NewScheduler(admins, alerter, zaptest.NewLogger(t), Config{Notifier: notifier})

	s.RunPass(context.Background())

	if got := alerter.count(); got != 3 {
		t.Fatalf("admins processed = %d, want 3", got)
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("chat messages = %d, want 1", len(notifier.messages))
	}
	if !strings.Contains(notifier.messages[0], "three@example.com") || !strings.Contains(notifier.messages[0], "2 payment alert(s)") {
		t.Errorf("summary = %q", notifier.messages[0])
	}
}

func TestRunPass_ListError(t *testing.T) {
	alerter := &fakeAlerter{}
	s := NewScheduler(&fakeAdmins{err: errors.New("db down")}, alerter, zaptest.NewLogger(t), Config{})
	s.RunPass(context.Background())
	if alerter.count() != 0 {
		t.Error("no admin should be alerted when listing fails")
	}
}

func TestStartAndStop(t *testing.T) {
	clk := &clock{t: at(15, 8, 0)}
	alerter := &fakeAlerter{}
	s := NewScheduler(&fakeAdmins{admins: []model.Admin{{ID: 1}}}, alerter, zaptest.NewLogger(t), Config{
		Interval: time.Hour,
		Hours:    []int{8},
		Location: time.UTC,
		Now:      clk.Now,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for alerter.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if alerter.count() != 1 {
		t.Fatalf("initial tick passes = %d, want 1", alerter.count())
	}

	s.ForceUpdate()
	deadline = time.Now().Add(2 * time.Second)
	for alerter.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if alerter.count() != 2 {
		t.Errorf("forced pass not executed, passes = %d", alerter.count())
	}

	s.Stop()
	s.Stop()
}
