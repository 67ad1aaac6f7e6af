package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RoomRepository интерфейс хранилища номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Subscribe() (<-chan []domain.Room, func())
}

// AvailabilityObserver получает количество номеров после каждого изменения списка
type AvailabilityObserver interface {
	SetRooms(total, available int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
