package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// NotificationResponse модель уведомления для ответа
type NotificationResponse struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// NotificationListResponse список уведомлений пользователя
type NotificationListResponse struct {
	Notifications []NotificationResponse
	Unread        int
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
