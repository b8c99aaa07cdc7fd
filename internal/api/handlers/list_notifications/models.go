package list_notifications

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/notifications/models"
)

// NotificationResponse HTTP-модель уведомления
type NotificationResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

// NotificationListResponse HTTP-модель списка уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

// FromServiceResponse конвертирует service модель в HTTP response
func FromServiceResponse(resp *models.NotificationListResponse) NotificationListResponse {
	notifications := make([]NotificationResponse, 0, len(resp.Notifications))
	for _, n := range resp.Notifications {
		notifications = append(notifications, fromServiceNotification(n))
	}

	return NotificationListResponse{
		Notifications: notifications,
		Unread:        resp.Unread,
	}
}

func fromServiceNotification(n models.NotificationResponse) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(domain.DateTimeFormat),
	}
}
