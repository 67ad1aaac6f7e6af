package validate_booking

import (
	"context"

	bookRoom "github.com/m04kA/SMC-RoomBooking/internal/usecase/book_room"
)

type BookingValidator interface {
	Validate(ctx context.Context, req *bookRoom.ValidateRequest) (*bookRoom.ValidateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
