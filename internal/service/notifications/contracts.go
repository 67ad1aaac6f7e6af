package notifications

import "time"

// Timer отложенная задача, которую можно отменить
type Timer interface {
	Stop() bool
}

// Scheduler планировщик отложенных задач (подменяется в тестах)
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsObserver учитывает показанные уведомления
type MetricsObserver interface {
	ObserveNotification(severity string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealScheduler планировщик на основе time.AfterFunc
type RealScheduler struct{}

// AfterFunc запускает f через d
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
