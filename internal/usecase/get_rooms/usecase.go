package get_rooms

import (
	"context"
	"fmt"
)

// UseCase use case для получения отфильтрованного списка номеров
type UseCase struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Execute читает актуальный список из хранилища и пересчитывает представление.
// Ничего не кэшируется: каждый вызов видит последнее состояние хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	f := req.Filter
	uc.logger.Info("GetRooms: search=%q, maxPrice=%.2f, category=%s, availableOnly=%t, sort=%s",
		f.SearchTerm, f.MaxPrice, f.Category, f.AvailableOnly, f.SortOrder)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.roomRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	filtered := FilterRooms(rooms, req.Filter)

	uc.logger.Info("GetRooms: %d of %d rooms matched", len(filtered), len(rooms))

	return &Response{
		Rooms: filtered,
		Total: len(rooms),
	}, nil
}
