package get_notification

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
}

// FromDomainNotification конвертирует domain модель в HTTP response
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Severity:  string(n.Severity),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		ExpiresAt: n.ExpiresAt.Format(time.RFC3339),
	}
}
