package dismiss_notification

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgNothingToDismiss = "нет активного уведомления"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/notifications/current
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.service.Dismiss() {
		handlers.RespondNotFound(w, msgNothingToDismiss)
		return
	}

	h.logger.Info("DELETE /notifications/current - Notification dismissed")
	handlers.RespondNoContent(w)
}
