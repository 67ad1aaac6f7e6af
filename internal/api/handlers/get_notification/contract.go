package get_notification

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

type NotificationService interface {
	Current() *domain.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
