package get_notification

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

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

// Handle GET /api/v1/notifications/current
// 204, если активного уведомления нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	n := h.service.Current()
	if n == nil {
		handlers.RespondNoContent(w)
		return
	}

	h.logger.Info("GET /notifications/current - Notification id=%s severity=%s", n.ID, n.Severity)
	handlers.RespondJSON(w, http.StatusOK, FromDomainNotification(n))
}
