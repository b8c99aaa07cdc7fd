package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-RentalService/internal/service/notifications/models"
)

// Service сервис внутренних уведомлений
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify создает уведомление для пользователя
// Вызывается другими сервисами при событиях бронирований и платежей
func (s *Service) Notify(ctx context.Context, userID int64, ntype domain.NotificationType, title, message string) error {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
	})
	if err != nil {
		s.logger.Error("Notify: failed to create notification for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}
	return nil
}

// GetByUser возвращает уведомления пользователя, непрочитанные первыми
func (s *Service) GetByUser(ctx context.Context, userID int64) (*models.NotificationListResponse, error) {
	list, err := s.notificationRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetByUser: failed to get notifications for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetByUser - repository error: %v", ErrInternal, err)
	}

	result := make([]models.NotificationResponse, 0, len(list))
	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
		result = append(result, models.FromDomainNotification(n))
	}

	return &models.NotificationListResponse{
		Notifications: result,
		Unread:        unread,
	}, nil
}

// MarkRead помечает уведомление прочитанным
// Доступно только владельцу уведомления
func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: failed to get notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	if n.UserID != userID {
		s.logger.Warn("MarkRead: user=%d is not the owner of notification=%d", userID, id)
		return ErrAccessDenied
	}

	if n.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		s.logger.Error("MarkRead: failed to mark notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
