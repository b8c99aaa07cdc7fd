package validate_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/promotions"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidPeriod       = "некорректный период аренды, ожидается RFC3339"
	msgVehicleNotFound     = "автомобиль не найден"
	msgPromotionNotFound   = "промокод не найден"
	msgPromotionInactive   = "промокод отключен"
	msgPromotionExpired    = "срок действия промокода истек"
	msgPromotionCapReached = "лимит применений промокода исчерпан"
	msgPromotionEVOnly     = "промокод действует только на электромобили"
	msgMissingUserID       = "отсутствует ID пользователя"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promotions/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /promotions/validate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ValidatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /promotions/validate - Failed to parse rental period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.Validate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrVehicleNotFound):
			h.logger.Warn("POST /promotions/validate - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, promotions.ErrPromotionNotFound):
			h.logger.Warn("POST /promotions/validate - Promotion not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgPromotionNotFound)

		case errors.Is(err, promotions.ErrPromotionInactive):
			h.logger.Warn("POST /promotions/validate - Promotion inactive: code=%s", req.Code)
			handlers.RespondConflict(w, msgPromotionInactive)

		case errors.Is(err, promotions.ErrPromotionExpired):
			h.logger.Warn("POST /promotions/validate - Promotion expired: code=%s", req.Code)
			handlers.RespondConflict(w, msgPromotionExpired)

		case errors.Is(err, promotions.ErrPromotionUsageCapReached):
			h.logger.Warn("POST /promotions/validate - Usage cap reached: code=%s", req.Code)
			handlers.RespondConflict(w, msgPromotionCapReached)

		case errors.Is(err, promotions.ErrPromotionEVOnly):
			h.logger.Warn("POST /promotions/validate - EV-only promotion: code=%s, vehicle_id=%d",
				req.Code, req.VehicleID)
			handlers.RespondConflict(w, msgPromotionEVOnly)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /promotions/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("POST /promotions/validate - Failed to validate promotion: code=%s, error=%v",
				req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promotions/validate - Promotion validated successfully: code=%s, user_id=%d, total=%.2f",
		req.Code, userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
