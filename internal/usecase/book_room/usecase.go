package book_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
)

// Тексты уведомлений
const (
	msgBookingSuccess = "Room %s reserved for %s"
	msgBookingFailed  = "SYSTEM_ERROR: Could not complete booking."
)

// Результаты бронирования для метрик
const (
	resultSuccess          = "success"
	resultValidationFailed = "validation_failed"
	resultNotFound         = "room_not_found"
	resultError            = "error"
)

// UseCase use case для бронирования номера
type UseCase struct {
	roomRepo RoomRepository
	notifier Notifier
	metrics  MetricsObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	roomRepo RoomRepository,
	notifier Notifier,
	metrics MetricsObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case бронирования номера.
//
// Невалидная форма блокирует отправку: хранилище не изменяется, уведомление не показывается.
// Доступность номера перед бронированием не проверяется.
// Ошибка хранилища показывается ERROR-уведомлением, список номеров остается прежним.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: room=%d, guest=%q, checkIn=%s, checkOut=%s",
		req.RoomID, req.Form.GuestName, req.Form.CheckIn, req.Form.CheckOut)

	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		uc.observe(resultValidationFailed)
		uc.logger.Warn("BookRoom: invalid room id=%d", req.RoomID)
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	booking, result := ToBooking(req.RoomID, req.Form)
	if !result.Valid() {
		uc.observe(resultValidationFailed)
		verr := &ValidationError{Result: result}
		uc.logger.Warn("BookRoom: %v", verr)
		return nil, verr
	}

	// 2. Помечаем номер занятым
	rooms, err := uc.roomRepo.MarkUnavailable(ctx, booking.RoomID)
	if err != nil {
		uc.notifier.Show(msgBookingFailed, domain.SeverityError)

		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.observe(resultNotFound)
			uc.logger.Warn("BookRoom: room id=%d not found", booking.RoomID)
			return nil, ErrRoomNotFound
		}

		uc.observe(resultError)
		uc.logger.Error("BookRoom: failed to book room id=%d: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: failed to book room: %v", ErrInternal, err)
	}

	// 3. Находим обновленный номер для ответа и уведомления
	var booked domain.Room
	for _, r := range rooms {
		if r.ID == booking.RoomID {
			booked = r
			break
		}
	}

	uc.notifier.Show(fmt.Sprintf(msgBookingSuccess, booked.Name, booking.GuestName), domain.SeveritySuccess)
	uc.observe(resultSuccess)

	uc.logger.Info("BookRoom: successfully booked room id=%d for %d night(s)", booking.RoomID, booking.Nights())

	return &Response{
		Success: true,
		Booking: booking,
		Room:    booked,
		Rooms:   rooms,
		Nights:  booking.Nights(),
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(result)
	}
}
