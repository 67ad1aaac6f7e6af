package book_room

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RoomRepository интерфейс хранилища номеров
type RoomRepository interface {
	MarkUnavailable(ctx context.Context, id int64) ([]domain.Room, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	Show(message string, severity ...domain.Severity) domain.Notification
}

// MetricsObserver учитывает результаты бронирований
type MetricsObserver interface {
	ObserveBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
