package reminder

import (
	"errors"
	"time"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/service/phone"

	"go.uber.org/zap"
)

var (
	ErrNoPhone              = errors.New("client has no phone number")
	ErrClientNotFound       = errors.New("client not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrNoEligibleClients    = errors.New("no eligible clients")
	ErrAllGatewaysExhausted = errors.New("all sms gateways failed")
	ErrEmailDelivery        = errors.New("reminder email delivery failed")
)

// Порядок перебора операторов, если определенный оператор не сработал.
// Для одиночной и массовой рассылки порядки разные.
var (
	SingleFallbackOrder = []phone.Carrier{phone.Globe, phone.Smart, phone.Sun}

	// "tm" не входит в таблицы операторов, поэтому эта попытка всегда неуспешна.
	// Запись оставлена как есть: неясно, что имелось в виду.
	BulkFallbackOrder = []phone.Carrier{phone.Smart, phone.Sun, phone.Carrier("tm")}
)

const recentPaidLimit = 5

// Result итог одной операции для вызывающего слоя
type Result struct {
	Success bool
	Message string
	// Оператор и адрес, через которые ушло SMS
	Carrier phone.Carrier
	Address string
	Err     error
}

type BulkResult struct {
	Success     bool
	SentCount   int
	FailedCount int
	Message     string
	Err         error
}

type Options struct {
	SingleFallback []phone.Carrier
	BulkFallback   []phone.Carrier
	// Пауза между письмами администратору в фоновой рассылке
	AlertPause time.Duration
	Location   *time.Location
	Now        func() time.Time
	Mirror     domain.NotificationMirror
}

type Service struct {
	clients       domain.ClientRepo
	admins        domain.AdminRepo
	notifications domain.NotificationRepo
	sender        domain.Sender
	mirror        domain.NotificationMirror
	logger        *zap.Logger

	singleFallback []phone.Carrier
	bulkFallback   []phone.Carrier
	loc            *time.Location
	now            func() time.Time
	limiter        *limiter
}

func NewService(
	clients domain.ClientRepo,
	admins domain.AdminRepo,
	notifications domain.NotificationRepo,
	sender domain.Sender,
	logger *zap.Logger,
	opts Options,
) *Service {
	s := &Service{
		clients:        clients,
		admins:         admins,
		notifications:  notifications,
		sender:         sender,
		mirror:         opts.Mirror,
		logger:         logger,
		singleFallback: opts.SingleFallback,
		bulkFallback:   opts.BulkFallback,
		loc:            opts.Location,
		now:            opts.Now,
		limiter:        newLimiter(opts.AlertPause),
	}
	if s.singleFallback == nil {
		s.singleFallback = SingleFallbackOrder
	}
	if s.bulkFallback == nil {
		s.bulkFallback = BulkFallbackOrder
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// today полночь текущих суток в зоне сервиса
func (s *Service) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func failure(msg string, err error) Result {
	return Result{Success: false, Message: msg, Err: err}
}
