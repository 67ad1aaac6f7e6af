package validate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownField       = "неизвестное поле формы"
)

type Handler struct {
	validator BookingValidator
	logger    Logger
}

func NewHandler(validator BookingValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings/validate
// Всегда 200 для корректного запроса: невалидная форма - это результат, а не ошибка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.validator.Validate(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookRoom.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgUnknownField)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
