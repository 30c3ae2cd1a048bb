package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"

	"go.uber.org/zap"
)

// Alerter отправляет администратору письма о ближайших платежах
type Alerter interface {
	AlertDueClients(ctx context.Context, admin model.Admin) (int, error)
}

type Config struct {
	Interval time.Duration
	Hours    []int
	Location *time.Location
	Now      func() time.Time
	// Необязательный чат для сводки по каждому администратору
	Notifier domain.ChatNotifier
}

// slot час срабатывания: дата и час в зоне планировщика
type slot struct {
	date string
	hour int
}

type Scheduler struct {
	logger   *zap.Logger
	admins   domain.AdminRepo
	alerter  Alerter
	notifier domain.ChatNotifier

	interval time.Duration
	hours    map[int]struct{}
	loc      *time.Location
	now      func() time.Time

	lastFired     slot
	forceUpdateCh chan struct{}
	stopCh        chan struct{}
	stopOnce      sync.Once
	mu            sync.Mutex
}

func NewScheduler(admins domain.AdminRepo, alerter Alerter, logger *zap.Logger, cfg Config) *Scheduler {
	s := &Scheduler{
		logger:        logger,
		admins:        admins,
		alerter:       alerter,
		notifier:      cfg.Notifier,
		interval:      cfg.Interval,
		hours:         make(map[int]struct{}, len(cfg.Hours)),
		loc:           cfg.Location,
		now:           cfg.Now,
		forceUpdateCh: make(chan struct{}, 1),
		stopCh:        make(chan struct{}),
	}
	for _, h := range cfg.Hours {
		s.hours[h] = struct{}{}
	}
	if s.interval <= 0 {
		s.interval = 10 * time.Minute
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Start запускает фоновый цикл. Первая проверка выполняется сразу.
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))
	s.Tick(ctx)
	for {
		select {
		case <-ticker.C:
			s.Tick(ctx)
		case <-s.forceUpdateCh:
			s.RunPass(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped", zap.Error(ctx.Err()))
			return
		case <-s.stopCh:
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// Tick запускает проход, если текущий час входит в набор и в этот час
// проход еще не выполнялся. Возвращает true, если проход был.
func (s *Scheduler) Tick(ctx context.Context) bool {
	now := s.now().In(s.loc)
	if _, ok := s.hours[now.Hour()]; !ok {
		return false
	}
	current := slot{date: now.Format(model.DateLayout), hour: now.Hour()}

	s.mu.Lock()
	if s.lastFired == current {
		s.mu.Unlock()
		return false
	}
	s.lastFired = current
	s.mu.Unlock()

	s.logger.Info("running scheduled due-payment alerts",
		zap.String("date", current.date), zap.Int("hour", current.hour))
	s.RunPass(ctx)
	return true
}

// RunPass один проход по всем администраторам. Ошибка или паника
// у одного администратора не прерывает проход.
func (s *Scheduler) RunPass(ctx context.Context) {
	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		s.logger.Error("error listing admins", zap.Error(err))
		return
	}
	for _, admin := range admins {
		if ctx.Err() != nil {
			return
		}
		s.alertAdmin(ctx, admin)
	}
}

func (s *Scheduler) alertAdmin(ctx context.Context, admin model.Admin) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while alerting admin",
				zap.Uint("admin_id", admin.ID), zap.Any("panic", r))
		}
	}()

	sent, err := s.alerter.AlertDueClients(ctx, admin)
	if err != nil {
		s.logger.Error("error sending due alerts",
			zap.Uint("admin_id", admin.ID), zap.Int("sent", sent), zap.Error(err))
	}
	if sent == 0 {
		return
	}
	s.logger.Info("due alerts sent", zap.Uint("admin_id", admin.ID), zap.Int("sent", sent))

	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("%s (%s): %d payment alert(s) sent", admin.Username, admin.Email, sent)
	if err := s.notifier.Notify(text); err != nil {
		s.logger.Warn("failed to post chat summary", zap.Uint("admin_id", admin.ID), zap.Error(err))
	}
}

// ForceUpdate немедленно запускает проход вне расписания
func (s *Scheduler) ForceUpdate() {
	select {
	case s.forceUpdateCh <- struct{}{}:
	default:
	}
}

// Stop останавливает фоновый цикл. Повторный вызов безопасен.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
