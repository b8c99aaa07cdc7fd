package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
	msgAccessDenied          = "доступ запрещен"
	msgMissingUserID         = "отсутствует ID пользователя"
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

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := strconv.ParseInt(vars["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{notificationId}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/{notificationId}/read - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.MarkRead(r.Context(), notificationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{notificationId}/read - Notification not found: id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notifications.ErrAccessDenied):
			h.logger.Warn("PATCH /notifications/{notificationId}/read - Access denied: user_id=%d, notification_id=%d",
				userID, notificationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /notifications/{notificationId}/read - Failed to mark notification: id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{notificationId}/read - Notification marked as read: user_id=%d, notification_id=%d",
		userID, notificationID)
	w.WriteHeader(http.StatusNoContent)
}
