package book_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomID      = "некорректный ID номера"
	msgValidationFailed   = "форма бронирования заполнена некорректно"
	msgRoomNotFound       = "номер не найден"
)

type Handler struct {
	useCase BookRoomUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *bookRoom.ValidationError

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /bookings - Validation failed: room_id=%d, %v", req.RoomID, err)
			handlers.RespondUnprocessable(w, FromValidationResult(verr.Result, msgValidationFailed))

		case errors.Is(err, bookRoom.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid room ID: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		case errors.Is(err, bookRoom.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to book room: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Room booked successfully: room_id=%d, nights=%d", req.RoomID, result.Nights)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
