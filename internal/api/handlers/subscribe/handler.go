package subscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPlanNotFound       = "тариф подписки не найден"
	msgAlreadySubscribed  = "у пользователя уже есть активная подписка"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscriptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Subscribe(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrPlanNotFound):
			h.logger.Warn("POST /subscriptions - Plan not found: plan_id=%d", req.PlanID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, subscriptions.ErrAlreadySubscribed):
			h.logger.Warn("POST /subscriptions - Already subscribed: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadySubscribed)

		case errors.Is(err, subscriptions.ErrInvalidInput):
			h.logger.Warn("POST /subscriptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /subscriptions - Failed to subscribe: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions - Subscription created successfully: subscription_id=%d, user_id=%d, tier=%s",
		result.ID, userID, result.Tier)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
