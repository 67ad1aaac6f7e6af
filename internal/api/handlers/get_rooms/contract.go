package get_rooms

import (
	"context"

	getRooms "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_rooms"
)

type GetRoomsUseCase interface {
	Execute(ctx context.Context, req *getRooms.Request) (*getRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
