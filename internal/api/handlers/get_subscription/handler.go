package get_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/handlers/subscribe"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions"
)

const (
	msgNotFound      = "активная подписка не найдена"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/subscriptions/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /subscriptions/me - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetActive(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("GET /subscriptions/me - No active subscription: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /subscriptions/me - Failed to get subscription: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subscriptions/me - Subscription retrieved successfully: user_id=%d, tier=%s",
		userID, result.Tier)
	handlers.RespondJSON(w, http.StatusOK, subscribe.FromServiceResponse(result))
}
