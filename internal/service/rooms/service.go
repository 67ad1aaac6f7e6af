package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

// Service сервис для работы с номерами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// WatchAvailability подписывается на изменения списка и передает счетчики наблюдателю.
// Блокирует до отмены контекста.
func (s *Service) WatchAvailability(ctx context.Context, observer AvailabilityObserver) {
	updates, cancel := s.roomRepo.Subscribe()
	defer cancel()

	s.logger.Info("WatchAvailability: started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("WatchAvailability: stopped")
			return
		case list, ok := <-updates:
			if !ok {
				return
			}
			available := 0
			for _, r := range list {
				if r.Available {
					available++
				}
			}
			observer.SetRooms(len(list), available)
		}
	}
}
