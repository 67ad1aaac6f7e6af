package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Service хранит не более одного активного уведомления.
//
// Жизненный цикл: none -> visible (Show) -> none (истечение TTL или новый Show).
// Каждый Show отменяет отложенную задачу предыдущего уведомления и планирует свою.
// Задача очищает только то уведомление, для которого была запланирована.
type Service struct {
	mu        sync.Mutex
	current   *domain.Notification
	expiry    Timer
	ttl       time.Duration
	scheduler Scheduler
	clock     TimeProvider
	metrics   MetricsObserver
	logger    Logger
}

// Option настраивает сервис уведомлений
type Option func(*Service)

// WithScheduler подменяет планировщик
func WithScheduler(s Scheduler) Option {
	return func(svc *Service) { svc.scheduler = s }
}

// WithTimeProvider подменяет источник времени
func WithTimeProvider(p TimeProvider) Option {
	return func(svc *Service) { svc.clock = p }
}

// WithMetrics включает учет уведомлений в метриках
func WithMetrics(m MetricsObserver) Option {
	return func(svc *Service) { svc.metrics = m }
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(ttl time.Duration, logger Logger, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultNotificationTTL
	}

	svc := &Service{
		ttl:       ttl,
		scheduler: RealScheduler{},
		clock:     RealTimeProvider{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Show заменяет текущее уведомление новым. Severity по умолчанию SUCCESS.
func (s *Service) Show(message string, severity ...domain.Severity) domain.Notification {
	sev := domain.SeveritySuccess
	if len(severity) > 0 {
		sev = severity[0]
	}
	if !sev.IsValid() {
		s.logger.Warn("Show: unknown severity=%q, falling back to %s", sev, domain.SeveritySuccess)
		sev = domain.SeveritySuccess
	}

	now := s.clock.Now()
	n := domain.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  sev,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	if s.expiry != nil {
		s.expiry.Stop()
	}
	s.current = &n
	id := n.ID
	s.expiry = s.scheduler.AfterFunc(s.ttl, func() { s.expire(id) })
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ObserveNotification(string(sev))
	}
	s.logger.Info("Show: notification id=%s severity=%s message=%q", n.ID, n.Severity, n.Message)

	return n
}

// Current возвращает копию текущего уведомления или nil
func (s *Service) Current() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	n := *s.current
	return &n
}

// Dismiss скрывает текущее уведомление досрочно. Возвращает false, если скрывать нечего.
func (s *Service) Dismiss() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
	s.logger.Info("Dismiss: notification id=%s dismissed", s.current.ID)
	s.current = nil
	return true
}

func (s *Service) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Таймер мог сработать одновременно с новым Show
	if s.current == nil || s.current.ID != id {
		return
	}
	s.current = nil
	s.expiry = nil
}
